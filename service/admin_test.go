package service

import (
	"Storefront/pkg/jwt"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminLogin(t *testing.T) {
	svc := NewAdminService(testConfig())

	resp, err := svc.Login(context.Background(), "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, svc.VerifyToken(resp.Token))
	assert.NoError(t, svc.Authorize(resp.Token, ""))

	_, err = svc.Login(context.Background(), "wrong")
	be := requireBizError(t, err, http.StatusUnauthorized)
	assert.Equal(t, "Unauthorized: Incorrect password.", be.Msg)
}

func TestAdminAuthorize(t *testing.T) {
	svc := NewAdminService(testConfig())

	assert.NoError(t, svc.Authorize("", "s3cret"))
	requireBizError(t, svc.Authorize("", ""), http.StatusUnauthorized)
	requireBizError(t, svc.Authorize("garbage", "nope"), http.StatusUnauthorized)

	forged, _, err := jwt.GenerateToken([]byte("not-the-key"), jwt.RoleAdmin, time.Now(), time.Hour)
	require.NoError(t, err)
	requireBizError(t, svc.Authorize(forged, ""), http.StatusUnauthorized)
}

func TestAdminTokenExpires(t *testing.T) {
	svc := NewAdminService(testConfig())
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	resp, err := svc.Login(context.Background(), "s3cret")
	require.NoError(t, err)

	now = now.Add(59 * time.Minute)
	assert.True(t, svc.VerifyToken(resp.Token))
	now = now.Add(2 * time.Minute)
	assert.False(t, svc.VerifyToken(resp.Token))
}

func TestAdminBcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	conf := testConfig()
	conf.Admin.Password = string(hash)
	svc := NewAdminService(conf)

	assert.True(t, svc.CheckPassword("hashed-secret"))
	assert.False(t, svc.CheckPassword(string(hash)))
	assert.False(t, svc.CheckPassword(""))
}
