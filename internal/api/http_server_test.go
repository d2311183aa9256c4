package api

import (
	"bytes"
	"comepouco/internal/auth"
	"comepouco/internal/config"
	"comepouco/internal/model"
	"comepouco/internal/storage"
	"context"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@comepouco.test"
	adminPassword = "admin-secret"
	// 1x1 透明 PNG
	tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="
)

type testServer struct {
	router   *gin.Engine
	repo     model.Repository
	filesDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := config.Config{
		DBType:               model.DBTypeSQLite,
		DBPath:               filepath.Join(dir, "api.db"),
		JWTSecret:            "test-secret",
		JWTIssuer:            "come-pouco-test",
		JWTExpiresIn:         time.Hour,
		BcryptCost:           auth.MinBcryptCost,
		CORSOrigins:          []string{"http://localhost:4200"},
		AdminEmail:           adminEmail,
		AdminPassword:        adminPassword,
		UploadMaxBytes:       1 << 20,
		StorageType:          storage.TypeLocal,
		StorageLocalDir:      filepath.Join(dir, "uploads"),
		StoragePublicBaseURL: "http://localhost:3000/files",
	}

	repo, err := model.InitRepository(&cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	created, err := model.SeedAdmin(context.Background(), repo, auth.NewHasher(cfg.BcryptCost, 1), cfg)
	require.NoError(t, err)
	require.True(t, created)

	store, err := storage.NewStorage(cfg)
	require.NoError(t, err)

	handler, err := NewHTTPHandler(cfg, repo, store, NewMetrics(prometheus.NewRegistry()))
	require.NoError(t, err)

	return &testServer{router: NewRouter(handler), repo: repo, filesDir: cfg.StorageLocalDir}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (s *testServer) registerUser(t *testing.T, email string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"fullName": "Maria Silva",
		"email":    email,
		"password": "maria-secret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	return resp.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) APIError {
	t.Helper()
	var apiErr APIError
	decode(t, w, &apiErr)
	return apiErr
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/health", "/api/health"} {
		w := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get(requestIDHeader))
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	s := newTestServer(t)

	wrongPassword := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": adminEmail, "password": "nope-nope"})
	unknownEmail := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ghost@comepouco.test", "password": "nope-nope"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())

	missing := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": adminEmail})
	assert.Equal(t, http.StatusBadRequest, missing.Code)

	malformed := s.do(t, http.MethodPost, "/api/auth/login", "", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, malformed.Code)
	assert.Equal(t, ErrCodeInvalidRequest, errorOf(t, malformed).Code)
}

func TestRegisterAndMe(t *testing.T) {
	s := newTestServer(t)

	token := s.registerUser(t, " Maria@Example.com ")

	w := s.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		User struct {
			ID       uint   `json:"id"`
			Email    string `json:"email"`
			FullName string `json:"fullName"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	decode(t, w, &me)
	assert.Equal(t, "maria@example.com", me.User.Email)
	assert.Equal(t, "Maria Silva", me.User.FullName)
	assert.Equal(t, "USER", me.User.Role)
	assert.NotContains(t, w.Body.String(), "password")

	dup := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"fullName": "Outra Maria",
		"email":    "MARIA@example.com",
		"password": "another-secret",
	})
	assert.Equal(t, http.StatusConflict, dup.Code)

	short := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"fullName": "Curta",
		"email":    "curta@example.com",
		"password": "12345",
	})
	assert.Equal(t, http.StatusBadRequest, short.Code)

	for _, password := range []string{"        ", strings.Repeat("b", 80)} {
		w := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
			"fullName": "Senha Ruim",
			"email":    "ruim@example.com",
			"password": password,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Equal(t, ErrCodeInvalidRequest, errorOf(t, w).Code)
	}
}

func TestAuthMiddlewareRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/affiliate-links", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			apiErr := errorOf(t, w)
			assert.Equal(t, ErrCodeUnauthorized, apiErr.Code)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}

func TestTokenOfDeletedUserIsRejected(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, adminEmail, adminPassword)
	userToken := s.registerUser(t, "gone@example.com")

	user, err := s.repo.GetUserByEmail(context.Background(), "gone@example.com")
	require.NoError(t, err)

	w := s.do(t, http.MethodDelete, "/api/users/"+itoa(user.ID), admin, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/api/affiliate-links", userToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleGate(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, adminEmail, adminPassword)
	user := s.registerUser(t, "user@example.com")

	for _, path := range []string{"/api/users", "/api/purchase-platforms"} {
		assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, path, user, nil).Code, path)
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, path, admin, nil).Code, path)
	}
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/affiliate-links", user, nil).Code)

	// 角色实时读取：升级为 ADMIN 后同一个 token 立即生效
	u, err := s.repo.GetUserByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)
	w := s.do(t, http.MethodPut, "/api/users/"+itoa(u.ID), admin, gin.H{"role": "admin"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/users", user, nil).Code)
}

func TestUsersCRUD(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, adminEmail, adminPassword)

	w := s.do(t, http.MethodPost, "/api/users", admin, gin.H{
		"fullName": "João",
		"email":    "joao@example.com",
		"password": "joao-secret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		User struct {
			ID   uint   `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	decode(t, w, &created)
	assert.Equal(t, "USER", created.User.Role)
	id := itoa(created.User.ID)

	w = s.do(t, http.MethodPost, "/api/users", admin, gin.H{
		"fullName": "João 2",
		"email":    "JOAO@example.com",
		"password": "joao-secret",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodGet, "/api/users", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Users []struct {
			ID uint `json:"id"`
		} `json:"users"`
	}
	decode(t, w, &list)
	require.Len(t, list.Users, 2)
	assert.Less(t, list.Users[0].ID, list.Users[1].ID, "users are ordered by id ascending")

	w = s.do(t, http.MethodPut, "/api/users/"+id, admin, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Informe ao menos um campo para atualização.", errorOf(t, w).Message)

	w = s.do(t, http.MethodPut, "/api/users/"+id, admin, gin.H{"password": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code, "empty password counts as absent")

	w = s.do(t, http.MethodPut, "/api/users/"+id, admin, gin.H{"password": "new-secret"})
	require.Equal(t, http.StatusOK, w.Code)
	s.login(t, "joao@example.com", "new-secret")

	w = s.do(t, http.MethodPut, "/api/users/abc", admin, gin.H{"fullName": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrCodeInvalidID, errorOf(t, w).Code)

	w = s.do(t, http.MethodPut, "/api/users/9999", admin, gin.H{"fullName": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, "/api/users/"+id, admin, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(t, http.MethodDelete, "/api/users/"+id, admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	adminUser, err := s.repo.GetUserByEmail(context.Background(), adminEmail)
	require.NoError(t, err)
	w = s.do(t, http.MethodDelete, "/api/users/"+itoa(adminUser.ID), admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "admins cannot delete themselves")
}

func TestAffiliateLinksCRUD(t *testing.T) {
	s := newTestServer(t)
	token := s.registerUser(t, "links@example.com")

	payload := gin.H{
		"originalLink":  "https://loja.example.com/p/1",
		"productImage":  "https://cdn.example.com/p/1.png",
		"catchyPhrase":  "Oferta imperdível",
		"affiliateLink": "https://aff.example.com/x1",
	}
	w := s.do(t, http.MethodPost, "/api/affiliate-links", token, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var first struct {
		Link struct {
			ID uint `json:"id"`
		} `json:"link"`
	}
	decode(t, w, &first)

	payload["affiliateLink"] = "https://aff.example.com/x2"
	w = s.do(t, http.MethodPost, "/api/affiliate-links", token, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	bad := gin.H{
		"originalLink":  "ftp://loja.example.com",
		"productImage":  "https://cdn.example.com/p/1.png",
		"catchyPhrase":  "x",
		"affiliateLink": "https://aff.example.com/x1",
	}
	w = s.do(t, http.MethodPost, "/api/affiliate-links", token, bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/affiliate-links", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Links []struct {
			ID uint `json:"id"`
		} `json:"links"`
	}
	decode(t, w, &list)
	require.Len(t, list.Links, 2)
	assert.Greater(t, list.Links[0].ID, list.Links[1].ID, "links are ordered newest first")

	id := itoa(first.Link.ID)
	w = s.do(t, http.MethodPut, "/api/affiliate-links/"+id, token, gin.H{"catchyPhrase": "  Nova frase  "})
	require.Equal(t, http.StatusOK, w.Code)
	var updated struct {
		Link struct {
			CatchyPhrase string `json:"catchyPhrase"`
		} `json:"link"`
	}
	decode(t, w, &updated)
	assert.Equal(t, "Nova frase", updated.Link.CatchyPhrase)

	w = s.do(t, http.MethodPut, "/api/affiliate-links/"+id, token, gin.H{"productImage": "not a url"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/api/affiliate-links/"+id, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, "/api/affiliate-links/"+id, token, nil).Code)
}

func TestPurchasePlatformsCRUD(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, adminEmail, adminPassword)

	w := s.do(t, http.MethodPost, "/api/purchase-platforms", admin, gin.H{
		"name":        "Loja A",
		"description": "Marketplace",
		"apiLink":     "https://api.loja-a.example.com",
		"accessKey":   "key-123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Platform struct {
			ID       uint `json:"id"`
			IsActive bool `json:"isActive"`
		} `json:"platform"`
	}
	decode(t, w, &created)
	assert.True(t, created.Platform.IsActive, "platforms are active by default")

	id := itoa(created.Platform.ID)
	w = s.do(t, http.MethodPut, "/api/purchase-platforms/"+id, admin, gin.H{"isActive": false})
	require.Equal(t, http.StatusOK, w.Code)
	var updated struct {
		Platform struct {
			IsActive bool   `json:"isActive"`
			Name     string `json:"name"`
		} `json:"platform"`
	}
	decode(t, w, &updated)
	assert.False(t, updated.Platform.IsActive)
	assert.Equal(t, "Loja A", updated.Platform.Name)

	w = s.do(t, http.MethodPut, "/api/purchase-platforms/"+id, admin, gin.H{"apiLink": "javascript:alert(1)"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/api/purchase-platforms/"+id, admin, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, "/api/purchase-platforms/"+id, admin, nil).Code)
}

func TestUploadProductImage(t *testing.T) {
	s := newTestServer(t)
	token := s.registerUser(t, "uploader@example.com")

	png, err := base64.StdEncoding.DecodeString(tinyPNG)
	require.NoError(t, err)

	upload := func(field string, data []byte) *httptest.ResponseRecorder {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile(field, "image.png")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/uploads/product-images", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		return w
	}

	w := upload("file", png)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		URL string `json:"url"`
	}
	decode(t, w, &resp)
	require.True(t, strings.HasPrefix(resp.URL, "http://localhost:3000/files/product-images/"), resp.URL)

	key := strings.TrimPrefix(resp.URL, "http://localhost:3000/files/")
	_, err = os.Stat(filepath.Join(s.filesDir, filepath.FromSlash(key)))
	require.NoError(t, err)

	served := s.do(t, http.MethodGet, "/files/"+key, "", nil)
	assert.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, png, served.Body.Bytes())

	assert.Equal(t, http.StatusBadRequest, upload("file", []byte("plain text is not an image")).Code)
	assert.Equal(t, http.StatusBadRequest, upload("image", png).Code)
	assert.Equal(t, http.StatusBadRequest, upload("file", bytes.Repeat([]byte{0x89}, 2<<20)).Code)
}

func TestInternalErrorsDoNotLeak(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, adminEmail, adminPassword)

	require.NoError(t, s.repo.Close())

	w := s.do(t, http.MethodGet, "/api/users", admin, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	apiErr := errorOf(t, w)
	assert.Equal(t, ErrCodeInternalError, apiErr.Code)
	assert.Equal(t, msgInternalError, apiErr.Message)
	assert.NotContains(t, strings.ToLower(w.Body.String()), "sql")
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.login(t, adminEmail, adminPassword)
	s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": adminEmail, "password": "wrong-one"})

	w := s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `auth_logins_total{result="success"} 1`)
	assert.Contains(t, body, `auth_logins_total{result="failure"} 1`)
	assert.Contains(t, body, `http_requests_total{method="POST",route="/api/auth/login",status="200"} 1`)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ErrCodeNotFound, errorOf(t, w).Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
