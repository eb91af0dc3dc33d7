package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studenthub/internal/database"
	"studenthub/internal/domain/course"
	"studenthub/internal/domain/user"
	"studenthub/internal/middleware"
	"studenthub/internal/pkg/jwt"
)

type fileResponse struct {
	Data FileRecord `json:"data"`
}

type fileListResponse struct {
	Data []FileRecord `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *fakeStorage, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &course.Course{}, &FileRecord{}))

	store := newFakeStorage()
	svc := NewService(NewRepository(db), store, user.NewRepository(db), course.NewRepository(db))
	handler := NewHandler(svc)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Identity(jwt.New("test-secret", time.Hour)))
	RegisterRoutes(v1, handler)

	return router, store, db
}

func performUpload(router *gin.Engine, courseID, userID, filename, mimeType string, content []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", mimeType)
	part, _ := w.CreatePart(header)
	_, _ = part.Write(content)
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/courses/"+courseID+"/files", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
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

func requireJSONContentType(t *testing.T, resp *httptest.ResponseRecorder) {
	t.Helper()
	require.True(t, strings.Contains(resp.Header().Get("Content-Type"), "application/json"))
}

func TestUploadFile(t *testing.T) {
	router, store, db := setupRouter(t)
	seedCourse(t, db, "cs101")

	content := bytes.Repeat([]byte("b"), 1024)
	resp := performUpload(router, "cs101", "student-1", "lecture.pdf", "application/pdf", content)
	require.Equal(t, http.StatusOK, resp.Code)
	requireJSONContentType(t, resp)

	var payload fileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "student-1", payload.Data.OwnerID)
	require.Equal(t, int64(1024), payload.Data.Size)
	require.Equal(t, "lecture.pdf", payload.Data.Name)
	require.NotEmpty(t, payload.Data.URL)

	require.Len(t, store.objects, 1)
}

func TestUploadWithoutIdentity(t *testing.T) {
	router, store, db := setupRouter(t)
	seedCourse(t, db, "cs101")

	resp := performUpload(router, "cs101", "", "lecture.pdf", "application/pdf", []byte("x"))
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	assertErrorCode(t, resp, "UNAUTHORIZED")
	require.Zero(t, store.putCalls)
}

func TestUploadOversize(t *testing.T) {
	router, store, db := setupRouter(t)
	seedCourse(t, db, "cs101")

	content := bytes.Repeat([]byte("c"), MaxFileSize+1)
	resp := performUpload(router, "cs101", "student-1", "big.pdf", "application/pdf", content)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assertErrorCode(t, resp, "PAYLOAD_TOO_LARGE")
	require.Zero(t, store.putCalls)
}

func TestUploadUnsupportedMediaType(t *testing.T) {
	router, _, db := setupRouter(t)
	seedCourse(t, db, "cs101")

	resp := performUpload(router, "cs101", "student-1", "tool.exe", "application/x-msdownload", []byte("MZ"))
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assertErrorCode(t, resp, "UNSUPPORTED_MEDIA_TYPE")
}

func TestUploadEmptyFile(t *testing.T) {
	router, _, db := setupRouter(t)
	seedCourse(t, db, "cs101")

	resp := performUpload(router, "cs101", "student-1", "empty.pdf", "application/pdf", nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assertErrorCode(t, resp, "EMPTY_FILE")
}

func TestUploadMissingFilePart(t *testing.T) {
	router, _, db := setupRouter(t)
	seedCourse(t, db, "cs101")

	resp := performRequest(router, http.MethodPost, "/api/v1/courses/cs101/files", nil, "student-1")
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assertErrorCode(t, resp, "VALIDATION_ERROR")
}

func TestUploadUnknownCourse(t *testing.T) {
	router, _, _ := setupRouter(t)

	resp := performUpload(router, "ghost", "student-1", "lecture.pdf", "application/pdf", []byte("x"))
	require.Equal(t, http.StatusNotFound, resp.Code)
	assertErrorCode(t, resp, "NOT_FOUND")
}

func TestListAndGetFiles(t *testing.T) {
	router, _, db := setupRouter(t)
	seedCourse(t, db, "cs101")

	first := performUpload(router, "cs101", "student-1", "a.pdf", "application/pdf", []byte("aa"))
	require.Equal(t, http.StatusOK, first.Code)
	second := performUpload(router, "cs101", "student-2", "b.pdf", "application/pdf", []byte("bb"))
	require.Equal(t, http.StatusOK, second.Code)

	resp := performRequest(router, http.MethodGet, "/api/v1/courses/cs101/files", nil, "student-1")
	require.Equal(t, http.StatusOK, resp.Code)

	var list fileListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Data, 2)

	var uploaded fileResponse
	require.NoError(t, json.NewDecoder(first.Body).Decode(&uploaded))

	resp = performRequest(router, http.MethodGet, "/api/v1/courses/cs101/files/"+uploaded.Data.ID, nil, "student-1")
	require.Equal(t, http.StatusOK, resp.Code)

	var got fileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, uploaded.Data.ID, got.Data.ID)
}

func TestDeleteFileByStranger(t *testing.T) {
	router, _, db := setupRouter(t)
	seedCourse(t, db, "cs101")
	seedUser(t, db, "student-2", false)

	upload := performUpload(router, "cs101", "student-1", "a.pdf", "application/pdf", []byte("aa"))
	require.Equal(t, http.StatusOK, upload.Code)
	var uploaded fileResponse
	require.NoError(t, json.NewDecoder(upload.Body).Decode(&uploaded))

	resp := performRequest(router, http.MethodDelete, "/api/v1/courses/cs101/files/"+uploaded.Data.ID, nil, "student-2")
	require.Equal(t, http.StatusForbidden, resp.Code)
	assertErrorCode(t, resp, "FORBIDDEN")

	// Still there
	resp = performRequest(router, http.MethodGet, "/api/v1/courses/cs101/files/"+uploaded.Data.ID, nil, "student-2")
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestDeleteFileByAdmin(t *testing.T) {
	router, _, db := setupRouter(t)
	seedCourse(t, db, "cs101")
	seedUser(t, db, "admin-1", true)

	upload := performUpload(router, "cs101", "student-1", "a.pdf", "application/pdf", []byte("aa"))
	require.Equal(t, http.StatusOK, upload.Code)
	var uploaded fileResponse
	require.NoError(t, json.NewDecoder(upload.Body).Decode(&uploaded))

	resp := performRequest(router, http.MethodDelete, "/api/v1/courses/cs101/files/"+uploaded.Data.ID, nil, "admin-1")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodGet, "/api/v1/courses/cs101/files/"+uploaded.Data.ID, nil, "admin-1")
	require.Equal(t, http.StatusNotFound, resp.Code)
}
