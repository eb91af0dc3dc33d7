package course

import (
	"bytes"
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
	"studenthub/internal/middleware"
	"studenthub/internal/pkg/jwt"
)

type courseResponse struct {
	Data Course `json:"data"`
}

type courseListResponse struct {
	Data []Course `json:"data"`
	Meta struct {
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
		Total int64 `json:"total"`
	} `json:"meta"`
}

type errorResponse struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &Course{}))

	handler := NewHandler(NewService(NewRepository(db)))

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Identity(jwt.New("test-secret", time.Hour)))
	handler.RegisterRoutes(v1, middleware.RequireAdmin(user.NewRepository(db)))

	return router, db
}

func seedUser(t *testing.T, db *gorm.DB, id string, admin bool) {
	t.Helper()
	require.NoError(t, db.Create(&user.User{ID: id, Email: id + "@example.com", FullName: "User " + id, IsAdmin: admin}).Error)
}

func seedCourse(t *testing.T, db *gorm.DB, id, code string) {
	t.Helper()
	require.NoError(t, db.Create(&Course{ID: id, Code: code, Title: "Course " + code}).Error)
}

func performRequest(router *gin.Engine, method, path string, body interface{}, userID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func assertErrorCode(t *testing.T, resp *httptest.ResponseRecorder, code string) {
	t.Helper()
	var payload errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, code, payload.Error.Code)
	require.NotEmpty(t, payload.Error.Message)
}

func TestCreateCourse(t *testing.T) {
	router, db := setupRouter(t)
	seedUser(t, db, "admin-1", true)

	resp := performRequest(router, http.MethodPost, "/api/v1/courses", CreateCourseRequest{
		Code:       "CS101",
		Title:      "Introduction to Programming",
		Instructor: "Dr. Ivanova",
	}, "admin-1")
	require.Equal(t, http.StatusCreated, resp.Code)

	var payload courseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.NotEmpty(t, payload.Data.ID)
	require.Equal(t, "CS101", payload.Data.Code)
	require.Equal(t, "admin-1", payload.Data.CreatedBy)
}

func TestCreateCourseKeepsSuppliedID(t *testing.T) {
	router, db := setupRouter(t)
	seedUser(t, db, "admin-1", true)

	resp := performRequest(router, http.MethodPost, "/api/v1/courses", CreateCourseRequest{
		ID:    "crs-cs101",
		Code:  "CS101",
		Title: "Introduction to Programming",
	}, "admin-1")
	require.Equal(t, http.StatusCreated, resp.Code)

	var payload courseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "crs-cs101", payload.Data.ID)
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	router, db := setupRouter(t)
	seedUser(t, db, "admin-1", true)
	seedCourse(t, db, "crs-1", "CS101")

	resp := performRequest(router, http.MethodPost, "/api/v1/courses", CreateCourseRequest{
		Code:  "CS101",
		Title: "Duplicate",
	}, "admin-1")
	require.Equal(t, http.StatusConflict, resp.Code)
	assertErrorCode(t, resp, "CONFLICT")
}

func TestCreateCourseValidation(t *testing.T) {
	router, db := setupRouter(t)
	seedUser(t, db, "admin-1", true)

	resp := performRequest(router, http.MethodPost, "/api/v1/courses", CreateCourseRequest{
		Title: "No code",
	}, "admin-1")
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var payload errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "VALIDATION_ERROR", payload.Error.Code)
	require.Contains(t, payload.Error.Details, "Code")
}

func TestCreateCourseAsNonAdmin(t *testing.T) {
	router, db := setupRouter(t)
	seedUser(t, db, "student-1", false)

	resp := performRequest(router, http.MethodPost, "/api/v1/courses", CreateCourseRequest{
		Code:  "CS101",
		Title: "Introduction to Programming",
	}, "student-1")
	require.Equal(t, http.StatusForbidden, resp.Code)
	assertErrorCode(t, resp, "FORBIDDEN")
}

func TestCreateCourseWithoutIdentity(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/v1/courses", CreateCourseRequest{
		Code:  "CS101",
		Title: "Introduction to Programming",
	}, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	assertErrorCode(t, resp, "UNAUTHORIZED")
}

func TestListCoursesPagination(t *testing.T) {
	router, db := setupRouter(t)
	seedCourse(t, db, "crs-1", "CS101")
	seedCourse(t, db, "crs-2", "MA201")
	seedCourse(t, db, "crs-3", "PH110")

	resp := performRequest(router, http.MethodGet, "/api/v1/courses?page=1&limit=2", nil, "student-1")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload courseListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Data, 2)
	require.Equal(t, 1, payload.Meta.Page)
	require.Equal(t, 2, payload.Meta.Limit)
	require.Equal(t, int64(3), payload.Meta.Total)
}

func TestGetCourse(t *testing.T) {
	router, db := setupRouter(t)
	seedCourse(t, db, "crs-1", "CS101")

	resp := performRequest(router, http.MethodGet, "/api/v1/courses/crs-1", nil, "student-1")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload courseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "CS101", payload.Data.Code)

	resp = performRequest(router, http.MethodGet, "/api/v1/courses/ghost", nil, "student-1")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assertErrorCode(t, resp, "NOT_FOUND")
}

func TestUpdateCourse(t *testing.T) {
	router, db := setupRouter(t)
	seedUser(t, db, "admin-1", true)
	seedCourse(t, db, "crs-1", "CS101")

	resp := performRequest(router, http.MethodPut, "/api/v1/courses/crs-1", UpdateCourseRequest{
		Title:    "Updated Title",
		Semester: "2026-fall",
	}, "admin-1")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload courseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "Updated Title", payload.Data.Title)
	require.Equal(t, "2026-fall", payload.Data.Semester)
	require.Equal(t, "CS101", payload.Data.Code)

	resp = performRequest(router, http.MethodPut, "/api/v1/courses/ghost", UpdateCourseRequest{Title: "X"}, "admin-1")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteCourse(t *testing.T) {
	router, db := setupRouter(t)
	seedUser(t, db, "admin-1", true)
	seedCourse(t, db, "crs-1", "CS101")

	resp := performRequest(router, http.MethodDelete, "/api/v1/courses/crs-1", nil, "admin-1")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodGet, "/api/v1/courses/crs-1", nil, "admin-1")
	require.Equal(t, http.StatusNotFound, resp.Code)
}
