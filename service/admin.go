package service

import (
	"Storefront/config"
	"Storefront/pkg/jwt"
	"Storefront/pkg/response"
	"Storefront/types"
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const msgIncorrectPassword = "Unauthorized: Incorrect password."

type AdminService struct {
	conf *config.Admin
	now  func() time.Time
}

var _ IAdminService = (*AdminService)(nil)

type IAdminService interface {
	Login(ctx context.Context, password string) (*types.AdminLoginResponse, error)
	VerifyToken(token string) bool
	Authorize(token, password string) error
}

func NewAdminService(conf *config.Config) *AdminService {
	return &AdminService{conf: conf.Admin, now: time.Now}
}

func (s *AdminService) Login(_ context.Context, password string) (*types.AdminLoginResponse, error) {
	if !s.CheckPassword(password) {
		return nil, response.Unauthorized(msgIncorrectPassword)
	}
	token, expiresAt, err := jwt.GenerateToken(s.conf.SigningKey(), jwt.RoleAdmin, s.now(), s.conf.TokenTTL)
	if err != nil {
		return nil, response.Internal("Failed to issue admin token.", err)
	}
	return &types.AdminLoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// CheckPassword 配置值以 $2 开头时按 bcrypt 校验，否则常量时间比较明文
func (s *AdminService) CheckPassword(password string) bool {
	if password == "" || s.conf.Password == "" {
		return false
	}
	if isBcryptHash(s.conf.Password) {
		return bcrypt.CompareHashAndPassword([]byte(s.conf.Password), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.conf.Password), []byte(password)) == 1
}

func (s *AdminService) VerifyToken(token string) bool {
	if token == "" {
		return false
	}
	_, err := jwt.ParseToken(s.conf.SigningKey(), jwt.RoleAdmin, token, s.now())
	return err == nil
}

// Authorize token 或者请求体里的密码，满足其一即可
func (s *AdminService) Authorize(token, password string) error {
	if s.VerifyToken(token) || s.CheckPassword(password) {
		return nil
	}
	return response.Unauthorized(msgIncorrectPassword)
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
