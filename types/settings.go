package types

// SettingsPayload 店铺配置，除店名外均可为空
type SettingsPayload struct {
	StoreName      string `json:"store_name"`
	LogoURL        string `json:"logo_url"`
	ShopAddress    string `json:"shop_address"`
	InstagramID    string `json:"instagram_id"`
	WhatsappNumber string `json:"whatsapp_number"`
}

type UpdateSettingsRequest struct {
	Settings *SettingsPayload `json:"settings"`
	Password string           `json:"password"`
}
