package routers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	internalApp "github.com/haierkeys/notemark-service/internal/app"
	"github.com/haierkeys/notemark-service/internal/dao"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	lg := zap.NewNop()
	db, err := dao.NewDBEngine(dao.DatabaseConfig{
		Type:        "sqlite",
		Path:        ":memory:",
		AutoMigrate: true,
	}, lg)
	require.NoError(t, err)

	cfg := &internalApp.AppConfig{}
	cfg.Security.AuthTokenKey = "router-test-secret"
	cfg.Security.TokenExpiry = "7d"
	cfg.App.DefaultContextTimeout = 10
	cfg.App.TitleFetchTimeout = "1s"
	cfg.User.RegisterIsEnable = true

	a, err := internalApp.NewApp(cfg, lg, db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	uni := ut.New(en.New(), en.New(), zh.New())
	return NewRouter(a, uni)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "connected", body["database"])
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter(t)

	// 非法邮箱与过短密码都给 400，错误体携带字段详情
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "not-an-email",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Validation failed", body["error"])
	assert.NotEmpty(t, body["details"])
}

func TestRegisterDuplicate(t *testing.T) {
	r := newTestRouter(t)

	payload := gin.H{"email": "dup@example.com", "password": "secret123"}
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email is already registered", decode(t, w)["error"])
}

func TestRegisterResponseHidesPassword(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "safe@example.com",
		"password": "secret123",
		"name":     "Safe",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.NotContains(t, body, "password")
	assert.Equal(t, "safe@example.com", body["email"])
}

func TestLoginUniformError(t *testing.T) {
	r := newTestRouter(t)
	registerAndLogin(t, r, "alice@example.com")

	wrongPassword := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	unknownEmail := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, decode(t, wrongPassword)["error"], decode(t, unknownEmail)["error"])
}

func TestNoteCRUD(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "alice@example.com")

	// Create
	w := doJSON(t, r, http.MethodPost, "/api/notes", token, gin.H{
		"title": "Groceries",
		"tags":  []string{"Home", "TODO"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, "Groceries", created["title"])
	assert.Equal(t, []any{"home", "todo"}, created["tags"])
	id := created["id"].(float64)

	// Get
	noteURL := "/api/notes/" + jsonNumber(id)
	w = doJSON(t, r, http.MethodGet, noteURL, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Partial update
	w = doJSON(t, r, http.MethodPut, noteURL, token, gin.H{"favorite": true})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)
	assert.Equal(t, true, updated["favorite"])
	assert.Equal(t, "Groceries", updated["title"])

	// Delete
	w = doJSON(t, r, http.MethodDelete, noteURL, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// Gone
	w = doJSON(t, r, http.MethodGet, noteURL, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Note not found", decode(t, w)["error"])
}

func TestNoteOwnershipForbidden(t *testing.T) {
	r := newTestRouter(t)
	aliceToken := registerAndLogin(t, r, "alice@example.com")
	bobToken := registerAndLogin(t, r, "bob@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/notes", aliceToken, gin.H{"title": "secret"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["id"].(float64)

	w = doJSON(t, r, http.MethodGet, "/api/notes/"+jsonNumber(id), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden", decode(t, w)["error"])

	// 列表也不会泄露他人条目
	w = doJSON(t, r, http.MethodGet, "/api/notes", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var notes []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	assert.Empty(t, notes)
}

// 可选认证：无 Token 与坏 Token 都按匿名放行
func TestNoteOptionalAuth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/notes", "", gin.H{"title": "anonymous"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["id"].(float64)

	// 坏 Token 仍能读到无归属条目
	w = doJSON(t, r, http.MethodGet, "/api/notes/"+jsonNumber(id), "garbage-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNoteInvalidID(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/notes/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id", decode(t, w)["error"])
}

func TestNoteListFilter(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "alice@example.com")

	seed := []gin.H{
		{"title": "Shopping List", "content": "apples", "tags": []string{"home"}},
		{"title": "Work", "content": "ship the release", "tags": []string{"job", "go"}},
		{"title": "Reading", "content": "books", "tags": []string{"go"}},
	}
	for _, payload := range seed {
		w := doJSON(t, r, http.MethodPost, "/api/notes", token, payload)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/notes?q=SHIP", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var notes []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "Work", notes[0]["title"])

	w = doJSON(t, r, http.MethodGet, "/api/notes?tags=go,job", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "Work", notes[0]["title"])
}

func TestBookmarkCRUD(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "alice@example.com")

	// URL 必填且必须合法
	w := doJSON(t, r, http.MethodPost, "/api/bookmarks", token, gin.H{"url": "not a url"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/bookmarks", token, gin.H{
		"url":   "https://example.com",
		"title": "Example",
		"tags":  []string{"Ref"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, []any{"ref"}, created["tags"])
	id := created["id"].(float64)

	bookmarkURL := "/api/bookmarks/" + jsonNumber(id)
	w = doJSON(t, r, http.MethodPut, bookmarkURL, token, gin.H{"description": "sample"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sample", decode(t, w)["description"])

	w = doJSON(t, r, http.MethodDelete, bookmarkURL, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, bookmarkURL, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Bookmark not found", decode(t, w)["error"])
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", decode(t, w)["error"])
}

func jsonNumber(v float64) string {
	return strconv.FormatInt(int64(v), 10)
}
