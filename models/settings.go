package models

// SettingsID 店铺配置只有一行
const SettingsID = 1

// StoreSettings 店铺品牌与联系方式
type StoreSettings struct {
	ID             uint64  `gorm:"primaryKey;autoIncrement:false;column:id" json:"id"`
	StoreName      string  `gorm:"size:255;not null;column:store_name" json:"store_name"`
	LogoURL        *string `gorm:"size:255;column:logo_url" json:"logo_url"`
	ShopAddress    *string `gorm:"type:text;column:shop_address" json:"shop_address"`
	InstagramID    *string `gorm:"size:100;column:instagram_id" json:"instagram_id"`
	WhatsappNumber *string `gorm:"size:50;column:whatsapp_number" json:"whatsapp_number"`
}

func (StoreSettings) TableName() string {
	return "store_settings"
}

// All 需要建表的模型，顺序即外键依赖顺序
func All() []any {
	return []any{
		&Product{},
		&Review{},
		&Order{},
		&OrderItem{},
		&StoreSettings{},
	}
}
