package server

import (
	"Storefront/handler"
)

type Handlers struct {
	Health   *handler.Health
	Admin    *handler.Admin
	Product  *handler.Product
	Order    *handler.Order
	Review   *handler.Review
	Settings *handler.Settings
	Chat     *handler.Chat
}
