package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewProduct,
	NewReview,
	NewOrder,
	NewSettings,
)
