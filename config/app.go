package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// HashSalt 订单对外编号的盐
	HashSalt string `json:"hash_salt" yaml:"hash_salt"`
}
