package jwt_test

import (
	"context"
	"roomapi/config"
	"roomapi/infras/jwt"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "roomapi"
	cfg.JWT.AccessSecret = secret

	return jwt.New(cfg)
}

func TestService_ValidateToken(t *testing.T) {
	service := newService("secret")

	token, err := service.GenerateAccessToken("1", "ops@example.com", "admin", time.Minute)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "ops@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, jwt.AccessToken, claims.Type)
	assert.NotEmpty(t, claims.TokenID)
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	service := newService("secret")

	expired, err := service.GenerateAccessToken("1", "ops@example.com", "admin", -time.Minute)
	require.NoError(t, err)

	foreign, err := newService("other").GenerateAccessToken("1", "ops@example.com", "admin", time.Minute)
	require.NoError(t, err)

	anonymous, err := service.GenerateAccessToken("", "", "", time.Minute)
	require.NoError(t, err)

	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{UserID: "1", Email: "a@b.c", Type: jwt.AccessToken}).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "expired", token: expired, want: jwt.ErrExpiredToken},
		{name: "wrong secret", token: foreign, want: jwt.ErrInvalidToken},
		{name: "missing identity", token: anonymous, want: jwt.ErrInvalidClaim},
		{name: "none algorithm", token: unsigned, want: jwt.ErrInvalidToken},
		{name: "garbage", token: "not-a-token", want: jwt.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingToken)

	_, err = jwt.ExtractTokenFromHeader("Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, jwt.ErrBearerFormat)

	_, err = jwt.ExtractTokenFromHeader("Bearer ")
	assert.ErrorIs(t, err, jwt.ErrBearerFormat)
}

func TestContext(t *testing.T) {
	_, ok := jwt.FromContext(context.Background())
	assert.False(t, ok)

	ctx := jwt.NewContext(context.Background(), &jwt.Claims{UserID: "7", Email: "ops@example.com"})

	claims, ok := jwt.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "7", claims.UserID)
}

func TestNewHMAC_RequiresSecret(t *testing.T) {
	_, err := jwt.NewHMAC(&config.Config{})
	assert.ErrorIs(t, err, jwt.ErrNoSecret)
}

func TestService_ValidateToken_RejectsEmptyKeySignature(t *testing.T) {
	service := newService("secret")

	forged, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
		UserID: "1",
		Email:  "ops@example.com",
		Role:   "admin",
		Type:   jwt.AccessToken,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString([]byte{})
	require.NoError(t, err)

	_, err = service.ValidateToken(forged)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestService_ValidateToken_Issuer(t *testing.T) {
	newIssuer := func(issuer string) jwt.JWT {
		cfg := &config.Config{}
		cfg.JWT.AccessSecret = "secret"
		cfg.JWT.Issuer = issuer

		service, err := jwt.NewHMAC(cfg)
		require.NoError(t, err)

		return service
	}

	idp := newIssuer("https://id.example.com")

	trusted, err := idp.GenerateAccessToken("1", "ops@example.com", "admin", time.Minute)
	require.NoError(t, err)

	_, err = idp.ValidateToken(trusted)
	require.NoError(t, err)

	other, err := newIssuer("https://elsewhere.example.com").GenerateAccessToken("1", "ops@example.com", "admin", time.Minute)
	require.NoError(t, err)

	_, err = idp.ValidateToken(other)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
