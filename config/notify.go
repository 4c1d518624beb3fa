package config

const (
	NotifyDriverLog      = "log"
	NotifyDriverRocketMQ = "rocketmq"
)

// Notify 新订单通知
type Notify struct {
	Driver string `json:"driver" yaml:"driver"`
	// Email 接收通知的运营邮箱
	Email  string `json:"email" yaml:"email"`
	Sender string `json:"sender" yaml:"sender"`
	Topic  string `json:"topic" yaml:"topic"`
}

// Order 下单配置
type Order struct {
	// RepriceFromCatalog 为 true 时以商品表价格重新计算，不信任购物车里的单价
	RepriceFromCatalog bool `json:"reprice_from_catalog" yaml:"reprice_from_catalog"`
}
