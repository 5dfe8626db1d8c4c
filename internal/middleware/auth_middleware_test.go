package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	appauth "github.com/alumniconnect/backend/internal/app/auth"
	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/auth"
)

// fakeUserRepo serves FindByID from a fixed map; everything else is unused
// by the middleware.
type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*models.User, error) { return nil, nil }

func (f *fakeUserRepo) FindApprovedAlumni(ctx context.Context) ([]*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) SetApproved(ctx context.Context, id string, approved bool) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	return 0, nil
}

func (f *fakeUserRepo) CountPendingAlumni(ctx context.Context) (int64, error) { return 0, nil }

func newAuthTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	user := &models.User{
		ID:         bson.NewObjectID(),
		Name:       "Test Alumni",
		Email:      "alumni@example.com",
		Role:       models.RoleAlumni,
		IsApproved: true,
	}

	repo := &fakeUserRepo{users: map[string]*models.User{user.ID.Hex(): user}}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})

	router := gin.New()
	protected := router.Group("", JWTAuth(jwtService, repo))
	protected.GET("/whoami", func(c *gin.Context) {
		identity, _ := appauth.FromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": identity.ID, "role": string(identity.Role)})
	})
	protected.GET("/admin-only", AllowRoles(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	protected.GET("/alumni-only", AllowRoles(models.RoleAlumni, models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	return router, jwtService, user
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func responseMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	message, _ := body["message"].(string)
	return message
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _, _ := newAuthTestRouter(t)

	w := doRequest(router, http.MethodGet, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authentication required", responseMessage(t, w))
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	router, _, _ := newAuthTestRouter(t)

	w := doRequest(router, http.MethodGet, "/whoami", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authentication required", responseMessage(t, w))
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router, _, _ := newAuthTestRouter(t)

	w := doRequest(router, http.MethodGet, "/whoami", "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", responseMessage(t, w))
}

func TestJWTAuthExpiredToken(t *testing.T) {
	router, _, user := newAuthTestRouter(t)

	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    -time.Minute,
		TokenIssuer: "test",
	})
	token, err := expiredService.Issue(user.ID.Hex(), user.Role)
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", responseMessage(t, w))
}

func TestJWTAuthDeletedUser(t *testing.T) {
	router, jwtService, _ := newAuthTestRouter(t)

	token, err := jwtService.Issue(bson.NewObjectID().Hex(), models.RoleStudent)
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "User not found", responseMessage(t, w))
}

func TestJWTAuthSetsIdentity(t *testing.T) {
	router, jwtService, user := newAuthTestRouter(t)

	token, err := jwtService.Issue(user.ID.Hex(), user.Role)
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/whoami", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, user.ID.Hex(), body["id"])
	assert.Equal(t, "alumni", body["role"])
}

func TestAllowRolesForbidden(t *testing.T) {
	router, jwtService, user := newAuthTestRouter(t)

	token, err := jwtService.Issue(user.ID.Hex(), user.Role)
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/admin-only", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden", responseMessage(t, w))
}

func TestAllowRolesPasses(t *testing.T) {
	router, jwtService, user := newAuthTestRouter(t)

	token, err := jwtService.Issue(user.ID.Hex(), user.Role)
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/alumni-only", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAllowRolesWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/gate", AllowRoles(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := doRequest(router, http.MethodGet, "/gate", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
