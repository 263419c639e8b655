package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spvm/records-api/internal/models"
	appErrors "github.com/spvm/records-api/pkg/errors"
)

type mockAuthRepo struct {
	officers map[string]*models.Officer
}

func (m *mockAuthRepo) FindByUsername(ctx context.Context, username string) (*models.Officer, error) {
	if o, ok := m.officers[username]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func testAuthConfig() AuthConfig {
	return AuthConfig{Secret: "test-secret", Expiration: time.Hour, Issuer: "records-api"}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthServiceLogin(t *testing.T) {
	repo := &mockAuthRepo{officers: map[string]*models.Officer{
		"chief": {
			ID:           1,
			Username:     "chief",
			PasswordHash: hashPassword(t, "secret123"),
			FullName:     "Chief Dupont",
			BadgeNumber:  "001",
			Role:         models.RoleAdmin,
			Status:       models.EmploymentActive,
		},
	}}
	service := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	resp, err := service.Login(context.Background(), models.LoginRequest{Username: "chief", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, "chief", resp.User.Username)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.Equal(t, "001", resp.User.BadgeNumber)
}

func TestAuthServiceLoginUnknownUser(t *testing.T) {
	service := NewAuthService(&mockAuthRepo{}, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := service.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "whatever"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Message, appErr.Message)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	repo := &mockAuthRepo{officers: map[string]*models.Officer{
		"chief": {
			ID:           1,
			Username:     "chief",
			PasswordHash: hashPassword(t, "secret123"),
			Status:       models.EmploymentActive,
		},
	}}
	service := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := service.Login(context.Background(), models.LoginRequest{Username: "chief", Password: "wrong"})
	require.Error(t, err)
	// Same message as unknown user so the response never reveals which
	// field failed.
	assert.Equal(t, appErrors.ErrInvalidCredentials.Message, appErrors.FromError(err).Message)
}

func TestAuthServiceLoginInactiveAccount(t *testing.T) {
	repo := &mockAuthRepo{officers: map[string]*models.Officer{
		"retired": {
			ID:           3,
			Username:     "retired",
			PasswordHash: hashPassword(t, "secret123"),
			Status:       models.EmploymentInactive,
		},
	}}
	service := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := service.Login(context.Background(), models.LoginRequest{Username: "retired", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginMissingFields(t *testing.T) {
	service := NewAuthService(&mockAuthRepo{}, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := service.Login(context.Background(), models.LoginRequest{Username: "chief"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateToken(t *testing.T) {
	repo := &mockAuthRepo{officers: map[string]*models.Officer{
		"chief": {
			ID:           1,
			Username:     "chief",
			PasswordHash: hashPassword(t, "secret123"),
			FullName:     "Chief Dupont",
			BadgeNumber:  "001",
			Role:         models.RoleAdmin,
			Status:       models.EmploymentActive,
		},
	}}
	service := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	resp, err := service.Login(context.Background(), models.LoginRequest{Username: "chief", Password: "secret123"})
	require.NoError(t, err)

	claims, err := service.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.OfficerID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "001", claims.BadgeNumber)
}

func TestAuthServiceValidateTokenExpired(t *testing.T) {
	cfg := testAuthConfig()
	cfg.Expiration = -time.Minute
	repo := &mockAuthRepo{officers: map[string]*models.Officer{
		"chief": {
			ID:           1,
			Username:     "chief",
			PasswordHash: hashPassword(t, "secret123"),
			Status:       models.EmploymentActive,
		},
	}}
	service := NewAuthService(repo, validator.New(), zap.NewNop(), cfg)

	resp, err := service.Login(context.Background(), models.LoginRequest{Username: "chief", Password: "secret123"})
	require.NoError(t, err)

	_, err = service.ValidateToken(resp.Token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrTokenExpired.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenForged(t *testing.T) {
	service := NewAuthService(&mockAuthRepo{}, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := service.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrTokenInvalid.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenWrongSecret(t *testing.T) {
	repo := &mockAuthRepo{officers: map[string]*models.Officer{
		"chief": {
			ID:           1,
			Username:     "chief",
			PasswordHash: hashPassword(t, "secret123"),
			Status:       models.EmploymentActive,
		},
	}}
	issuer := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())
	resp, err := issuer.Login(context.Background(), models.LoginRequest{Username: "chief", Password: "secret123"})
	require.NoError(t, err)

	other := testAuthConfig()
	other.Secret = "different-secret"
	verifier := NewAuthService(repo, validator.New(), zap.NewNop(), other)

	_, err = verifier.ValidateToken(resp.Token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrTokenInvalid.Code, appErrors.FromError(err).Code)
}
