package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopcart_backend/internal/auth"
	"shopcart_backend/internal/models"
	"shopcart_backend/internal/repositories"
	"shopcart_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (r *stubUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(email string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) CreateWithProfile(user *models.User, profile *models.Profile, token *models.EmailVerificationToken) error {
	return nil
}

func (r *stubUserRepo) Update(user *models.User) error                                  { return nil }
func (r *stubUserRepo) UpdateWithProfile(user *models.User, profile *models.Profile) error { return nil }
func (r *stubUserRepo) UpdatePassword(userID, passwordHash string) error                { return nil }
func (r *stubUserRepo) Delete(userID string) error                                      { return nil }

func newAuthTestRouter(tm *auth.TokenManager, repo repositories.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tm, repo), func(c *gin.Context) {
		userID, _ := c.Get(string(contextkeys.UserIDKey))
		isStaff, _ := c.Get(string(contextkeys.IsStaffKey))
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "is_staff": isStaff})
	})
	return router
}

func TestAuthMiddleware_AllowsValidAccessToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour, time.Hour)
	repo := &stubUserRepo{users: map[string]*models.User{
		"user-1": {BaseModel: models.BaseModel{ID: "user-1"}, IsActive: true, IsStaff: true},
	}}
	router := newAuthTestRouter(tm, repo)

	pair, err := tm.GeneratePair("user-1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
	assert.Contains(t, w.Body.String(), `"is_staff":true`)
}

func TestAuthMiddleware_RejectsMissingHeader(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour, time.Hour)
	router := newAuthTestRouter(tm, &stubUserRepo{users: map[string]*models.User{}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RejectsRefreshToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour, time.Hour)
	repo := &stubUserRepo{users: map[string]*models.User{
		"user-1": {BaseModel: models.BaseModel{ID: "user-1"}, IsActive: true},
	}}
	router := newAuthTestRouter(tm, repo)

	pair, err := tm.GeneratePair("user-1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Refresh)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RejectsDeletedUser(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour, time.Hour)
	router := newAuthTestRouter(tm, &stubUserRepo{users: map[string]*models.User{}})

	pair, err := tm.GeneratePair("ghost")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
