package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumniconnect/backend/internal/app/models"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    exp,
		TokenIssuer: "test",
	})
}

func TestIssueAndVerify(t *testing.T) {
	service := newTestService(time.Hour)

	token, err := service.Issue("64f1c0d2a1b2c3d4e5f60718", models.RoleAlumni)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0d2a1b2c3d4e5f60718", claims.UserID)
	assert.Equal(t, models.RoleAlumni, claims.Role)
	assert.Equal(t, "test", claims.Issuer)
}

func TestVerifyExpiredToken(t *testing.T) {
	service := newTestService(-time.Minute)

	token, err := service.Issue("64f1c0d2a1b2c3d4e5f60718", models.RoleStudent)
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyTamperedToken(t *testing.T) {
	service := newTestService(time.Hour)

	token, err := service.Issue("64f1c0d2a1b2c3d4e5f60718", models.RoleStudent)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, err = service.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := newTestService(time.Hour)
	verifier := NewJWTService(JWTConfig{
		SecretKey:   "another-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})

	token, err := issuer.Issue("64f1c0d2a1b2c3d4e5f60718", models.RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyEmptyToken(t *testing.T) {
	service := newTestService(time.Hour)

	_, err := service.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid header", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing prefix", header: "abc.def.ghi", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "empty token", header: "Bearer ", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
