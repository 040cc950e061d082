package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newFieldKeyContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.RemoteAddr = "10.0.0.9:4321"
	return c
}

func TestKeyByIPAndJSONField(t *testing.T) {
	c := newFieldKeyContext(t, `{"email":" Staff@Delipedidos.Test "}`)

	key := KeyByIPAndJSONField("email")(c)
	if key != "staff@delipedidos.test|10.0.0.9" {
		t.Fatalf("key want staff@delipedidos.test|10.0.0.9 got %s", key)
	}

	// The limiter runs before the JSON binding, so the body must survive.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		t.Fatalf("read body after key extraction failed: %v", err)
	}
	if !strings.Contains(string(body), "Staff@Delipedidos.Test") {
		t.Fatalf("request body should be restored, got %s", string(body))
	}
}

func TestKeyByIPAndJSONFieldFallsBackToIP(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "invalid json", body: "{"},
		{name: "field missing", body: `{"password":"x"}`},
		{name: "field not a string", body: `{"email":42}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newFieldKeyContext(t, tc.body)
			key := KeyByIPAndJSONField("email")(c)
			if key != "10.0.0.9" {
				t.Fatalf("key want bare client ip, got %s", key)
			}
		})
	}
}

func TestRateLimitMiddlewarePassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rules := []RateLimitRule{
		{WindowSeconds: 60, MaxRequests: 1}, // no redis client
		{WindowSeconds: 0, MaxRequests: 1},  // disabled window
		{WindowSeconds: 60, MaxRequests: 0}, // disabled quota
	}
	for _, rule := range rules {
		r := gin.New()
		r.Use(RateLimitMiddleware(nil, rule, KeyByIP))
		r.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status want 200 got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"ok":true`) {
			t.Fatalf("expected handler response body, got %s", w.Body.String())
		}
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  int64
		ok    bool
	}{
		{name: "int64", input: int64(7), want: 7, ok: true},
		{name: "int", input: int(8), want: 8, ok: true},
		{name: "uint32", input: uint32(9), want: 9, ok: true},
		{name: "float64 truncates", input: float64(10.9), want: 10, ok: true},
		{name: "string", input: "nope", want: 0, ok: false},
		{name: "nil", input: nil, want: 0, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toInt64(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok want %v got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Fatalf("value want %d got %d", tc.want, got)
			}
		})
	}
}
