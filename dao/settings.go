package dao

import (
	"Storefront/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Settings struct {
	Repo[models.StoreSettings]
}

func NewSettings(db *gorm.DB) *Settings {
	return &Settings{
		Repo: NewRepo[models.StoreSettings](db),
	}
}

func (d *Settings) Get(ctx context.Context) (*models.StoreSettings, error) {
	return d.FindById(ctx, models.SettingsID)
}

// Update 原地覆盖，空指针写成 NULL。
// MySQL 在值未变化时 RowsAffected 为 0，所以是否存在由调用方回读判断
func (d *Settings) Update(ctx context.Context, settings *models.StoreSettings) error {
	return d.Db.WithContext(ctx).
		Model(&models.StoreSettings{}).
		Where("id = ?", models.SettingsID).
		Select("store_name", "logo_url", "shop_address", "instagram_id", "whatsapp_number").
		Updates(settings).Error
}

// EnsureDefault 只在不存在时插入
func (d *Settings) EnsureDefault(ctx context.Context, settings *models.StoreSettings) error {
	settings.ID = models.SettingsID
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(settings).Error
}
