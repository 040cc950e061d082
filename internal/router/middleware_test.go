package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/delipedidos/api/internal/models"
	"github.com/delipedidos/api/internal/repository"
	"github.com/delipedidos/api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func TestResolveAllowedOrigin(t *testing.T) {
	cases := []struct {
		name        string
		origin      string
		allowed     []string
		credentials bool
		want        string
	}{
		{name: "wildcard", origin: "https://shop.example.com", allowed: []string{"*"}, want: "*"},
		{name: "wildcard with credentials echoes origin", origin: "https://shop.example.com", allowed: []string{"*"}, credentials: true, want: "https://shop.example.com"},
		{name: "allow list match", origin: "https://a.example.com", allowed: []string{"https://a.example.com", "https://b.example.com"}, want: "https://a.example.com"},
		{name: "allow list match is case insensitive", origin: "https://A.example.com", allowed: []string{"https://a.example.com"}, want: "https://A.example.com"},
		{name: "unmatched origin", origin: "https://x.example.com", allowed: []string{"https://a.example.com"}, want: ""},
		{name: "empty allow list", origin: "https://a.example.com", allowed: nil, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveAllowedOrigin(tc.origin, tc.allowed, tc.credentials)
			if got != tc.want {
				t.Fatalf("origin want %q got %q", tc.want, got)
			}
		})
	}
}

func TestRequestIDMiddlewarePropagatesHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-abc")
	r.ServeHTTP(w, req)

	if w.Header().Get(requestIDHeader) != "req-abc" {
		t.Fatalf("response header want req-abc got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-abc" {
		t.Fatalf("context request id want req-abc got %s", resp["request_id"])
	}
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("generated request id should not be empty")
	}
}

func newAuthTestRepo(t *testing.T) (repository.AdminRepository, *models.Admin) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:router_auth_test_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	admin := &models.Admin{Email: "staff@delipedidos.test", PasswordHash: "x"}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	return repository.NewAdminRepository(db), admin
}

func signTestToken(t *testing.T, secret string, adminID uint) string {
	t.Helper()
	claims := &service.JWTClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	return token
}

func serveAuthRequest(repo repository.AdminRepository, secret, authHeader string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddleware(secret, repo))
	r.GET("/admin/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": c.GetUint("admin_id")})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeStatusCode(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp.StatusCode
}

func TestJWTAuthMiddlewareAcceptsValidToken(t *testing.T) {
	repo, admin := newAuthTestRepo(t)
	token := signTestToken(t, "test-secret", admin.ID)

	w := serveAuthRequest(repo, "test-secret", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		AdminID uint `json:"admin_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.AdminID != admin.ID {
		t.Fatalf("admin_id want %d got %d", admin.ID, resp.AdminID)
	}
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	repo, admin := newAuthTestRepo(t)

	cases := []struct {
		name   string
		secret string
		header string
	}{
		{name: "missing secret", secret: "", header: "Bearer whatever"},
		{name: "missing header", secret: "test-secret", header: ""},
		{name: "malformed header", secret: "test-secret", header: "Token abc"},
		{name: "wrong signing secret", secret: "test-secret", header: "Bearer " + signTestToken(t, "other-secret", admin.ID)},
		{name: "unknown admin", secret: "test-secret", header: "Bearer " + signTestToken(t, "test-secret", admin.ID+100)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serveAuthRequest(repo, tc.secret, tc.header)
			if code := decodeStatusCode(t, w); code != 401 {
				t.Fatalf("status_code want 401 got %d", code)
			}
		})
	}
}
