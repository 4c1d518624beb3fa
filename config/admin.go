package config

import "time"

// Admin 管理端配置
type Admin struct {
	// Password 明文或 bcrypt 哈希
	Password    string        `json:"password" yaml:"password"`
	TokenSecret string        `json:"token_secret" yaml:"token_secret"`
	TokenTTL    time.Duration `json:"token_ttl" yaml:"token_ttl"`
}

func (a *Admin) fillDefaults() {
	if a.TokenTTL == 0 {
		a.TokenTTL = 12 * time.Hour
	}
}

// SigningKey 未单独配置时退回到管理员密码
func (a *Admin) SigningKey() []byte {
	if a.TokenSecret != "" {
		return []byte(a.TokenSecret)
	}
	return []byte(a.Password)
}
