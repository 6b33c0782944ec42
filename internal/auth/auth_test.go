package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"thematic-analysis-backend/internal/database/models"
	"thematic-analysis-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Test User",
		Email:     "test@example.com",
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		config := &AuthConfig{JWTSecret: "test-signing-key"}
		assert.NoError(t, config.ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := &AuthConfig{}
		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("negative ttl", func(t *testing.T) {
		config := &AuthConfig{JWTSecret: "secret", TokenTTL: -time.Minute}
		assert.Error(t, config.ValidateConfig())
	})

	t.Run("service rejects invalid config", func(t *testing.T) {
		_, err := NewAuthService(&AuthConfig{})
		assert.Error(t, err)
		_, err = NewAuthService(nil)
		assert.Error(t, err)
	})
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(&AuthConfig{JWTSecret: "test-signing-key-for-jwt-operations"})
	require.NoError(t, err)

	user := testUser()

	token, err := service.GenerateJWT(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	userID, err := claims.UserID()
	assert.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, defaultIssuer, claims.Issuer)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)
}

func TestJWTRejectsForeignTokens(t *testing.T) {
	service, err := NewAuthService(&AuthConfig{JWTSecret: "right-secret"})
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "wrong-secret"})
		require.NoError(t, err)
		token, err := other.GenerateJWT(testUser())
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("other issuer", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "right-secret", Issuer: "someone-else"})
		require.NoError(t, err)
		token, err := other.GenerateJWT(testUser())
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &AuthClaims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    defaultIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("right-secret"))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("subject is not a user id", func(t *testing.T) {
		claims := &AuthClaims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "12345",
			Issuer:    defaultIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("right-secret"))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid subject")
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(&AuthConfig{JWTSecret: "middleware-secret"})
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		email, _ := GetUserEmail(c)
		fromCtx, _ := c.Request.Context().Value(logger.UserIDKey).(string)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String(), "email": email, "ctx_user": fromCtx})
	})

	t.Run("valid token", func(t *testing.T) {
		user := testUser()
		token, err := service.GenerateJWT(user)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), user.ID.String())
		assert.Contains(t, w.Body.String(), `"ctx_user":"`+user.ID.String()+`"`)
		assert.Contains(t, w.Body.String(), user.Email)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header is required")
	})

	t.Run("not a bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})
}

func TestContextHelpersWithoutAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)
	_, ok = GetUserEmail(c)
	assert.False(t, ok)
	_, ok = GetAuthClaims(c)
	assert.False(t, ok)
}
