package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studenthub/internal/database"
	"studenthub/internal/domain/user"
	"studenthub/internal/pkg/jwt"
)

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupIdentityRouter(t *testing.T, jwtService *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Identity(jwtService))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return router
}

func performGet(router *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func whoami(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload.UserID
}

func TestIdentityFromHeader(t *testing.T) {
	router := setupIdentityRouter(t, jwt.New("secret", time.Hour))

	resp := performGet(router, "/whoami", map[string]string{"X-User-Id": "student-1"})
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "student-1", whoami(t, resp))
}

func TestIdentityHeaderWinsOverToken(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)
	router := setupIdentityRouter(t, jwtService)

	token, err := jwtService.GenerateToken("token-user", "t@example.com", false)
	require.NoError(t, err)

	resp := performGet(router, "/whoami", map[string]string{
		"X-User-Id":     "header-user",
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "header-user", whoami(t, resp))
}

func TestIdentityFromBearerToken(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)
	router := setupIdentityRouter(t, jwtService)

	token, err := jwtService.GenerateToken("student-7", "s7@example.com", false)
	require.NoError(t, err)

	resp := performGet(router, "/whoami", map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "student-7", whoami(t, resp))
}

func TestIdentityMissing(t *testing.T) {
	router := setupIdentityRouter(t, jwt.New("secret", time.Hour))

	resp := performGet(router, "/whoami", nil)
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	var payload errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "UNAUTHORIZED", payload.Error.Code)
}

func TestIdentityRejectsBadToken(t *testing.T) {
	router := setupIdentityRouter(t, jwt.New("secret", time.Hour))

	resp := performGet(router, "/whoami", map[string]string{"Authorization": "Bearer not.a.token"})
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestIdentityRejectsExpiredToken(t *testing.T) {
	expired := jwt.New("secret", -time.Minute)
	router := setupIdentityRouter(t, jwt.New("secret", time.Hour))

	token, err := expired.GenerateToken("student-7", "s7@example.com", false)
	require.NoError(t, err)

	resp := performGet(router, "/whoami", map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func setupAdminRouter(t *testing.T) (*gin.Engine, *gorm.DB, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}))

	jwtService := jwt.New("secret", time.Hour)

	router := gin.New()
	router.Use(Identity(jwtService), RequireAdmin(user.NewRepository(db)))
	router.GET("/admin-area", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, db, jwtService
}

func TestRequireAdminAllowsStoredAdmin(t *testing.T) {
	router, db, _ := setupAdminRouter(t)
	require.NoError(t, db.Create(&user.User{ID: "admin-1", Email: "a@example.com", FullName: "Admin", IsAdmin: true}).Error)

	resp := performGet(router, "/admin-area", map[string]string{"X-User-Id": "admin-1"})
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestRequireAdminRejectsRegularUser(t *testing.T) {
	router, db, _ := setupAdminRouter(t)
	require.NoError(t, db.Create(&user.User{ID: "student-1", Email: "s@example.com", FullName: "Student"}).Error)

	resp := performGet(router, "/admin-area", map[string]string{"X-User-Id": "student-1"})
	require.Equal(t, http.StatusForbidden, resp.Code)

	var payload errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "FORBIDDEN", payload.Error.Code)
}

func TestRequireAdminRejectsUnknownUser(t *testing.T) {
	router, _, _ := setupAdminRouter(t)

	resp := performGet(router, "/admin-area", map[string]string{"X-User-Id": "ghost"})
	require.Equal(t, http.StatusForbidden, resp.Code)
}

// Admin status lives in the users table. A token claiming admin must not
// open the admin area for a user whose stored profile says otherwise.
func TestRequireAdminIgnoresTokenClaim(t *testing.T) {
	router, db, jwtService := setupAdminRouter(t)
	require.NoError(t, db.Create(&user.User{ID: "student-1", Email: "s@example.com", FullName: "Student"}).Error)

	token, err := jwtService.GenerateToken("student-1", "s@example.com", true)
	require.NoError(t, err)

	resp := performGet(router, "/admin-area", map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusForbidden, resp.Code)
}
