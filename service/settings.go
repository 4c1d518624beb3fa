package service

import (
	"Storefront/dao"
	"Storefront/models"
	"Storefront/pkg/response"
	"Storefront/types"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type SettingsService struct {
	SettingsDao *dao.Settings
}

var _ ISettingsService = (*SettingsService)(nil)

type ISettingsService interface {
	Get(ctx context.Context) (*models.StoreSettings, error)
	Update(ctx context.Context, payload *types.SettingsPayload) (*models.StoreSettings, error)
}

func (s *SettingsService) Get(ctx context.Context) (*models.StoreSettings, error) {
	settings, err := s.SettingsDao.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("Store settings not found.")
	}
	if err != nil {
		return nil, response.Internal("Failed to fetch store settings.", err)
	}
	return settings, nil
}

// Update 调用前需要完成管理员校验
func (s *SettingsService) Update(ctx context.Context, payload *types.SettingsPayload) (*models.StoreSettings, error) {
	if payload == nil || strings.TrimSpace(payload.StoreName) == "" {
		return nil, response.BadRequest("Bad Request: Store name is required.")
	}

	err := s.SettingsDao.Update(ctx, &models.StoreSettings{
		StoreName:      strings.TrimSpace(payload.StoreName),
		LogoURL:        nullable(payload.LogoURL),
		ShopAddress:    nullable(payload.ShopAddress),
		InstagramID:    nullable(payload.InstagramID),
		WhatsappNumber: nullable(payload.WhatsappNumber),
	})
	if err != nil {
		return nil, response.Internal("Failed to update settings in the database.", err)
	}

	settings, err := s.SettingsDao.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("Store settings not found.")
	}
	if err != nil {
		return nil, response.Internal("Failed to update settings in the database.", err)
	}
	return settings, nil
}
