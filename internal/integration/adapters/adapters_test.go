package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

type movableClock struct{ now time.Time }

func (c *movableClock) Now() time.Time { return c.now }

func newTokenService(t *testing.T, clock *movableClock) *tokenService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.RefreshTokenModel{}))

	svc := NewTokenService("test-secret", 15*time.Minute, time.Hour, persistence.NewTokenRepository(db), clock)
	return svc.(*tokenService)
}

func TestTokenService_RoundTrip(t *testing.T) {
	clock := &movableClock{now: time.Now()}
	svc := newTokenService(t, clock)
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(context.Background(), userID, "ana@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)

	_, err = svc.ValidateAccessToken(context.Background(), pair.RefreshToken)
	assert.Error(t, err, "refresh token must not pass as access token")

	_, err = svc.ValidateRefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, svc.InvalidateRefreshToken(context.Background(), pair.RefreshToken))
	_, err = svc.ValidateRefreshToken(context.Background(), pair.RefreshToken)
	assert.Error(t, err)
}

func TestTokenService_Expiry(t *testing.T) {
	clock := &movableClock{now: time.Now()}
	svc := newTokenService(t, clock)

	pair, err := svc.GenerateTokenPair(context.Background(), uuid.New(), "bia@example.com")
	require.NoError(t, err)

	clock.now = clock.now.Add(16 * time.Minute)
	_, err = svc.ValidateAccessToken(context.Background(), pair.AccessToken)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
}

func TestTokenService_DistinctPairsInSameSecond(t *testing.T) {
	clock := &movableClock{now: time.Now()}
	svc := newTokenService(t, clock)
	userID := uuid.New()

	first, err := svc.GenerateTokenPair(context.Background(), userID, "c@example.com")
	require.NoError(t, err)
	second, err := svc.GenerateTokenPair(context.Background(), userID, "c@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	hash, err := svc.HashPassword("secret123")
	require.NoError(t, err)
	assert.NoError(t, svc.VerifyPassword(hash, "secret123"))
	assert.Error(t, svc.VerifyPassword(hash, "secret124"))

	assert.Error(t, svc.ValidatePasswordStrength("short"))
	assert.NoError(t, svc.ValidatePasswordStrength("long-enough"))
}
