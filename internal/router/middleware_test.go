package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}
}

func TestJWTAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(JWTAuthMiddleware("secret", nil))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if code, _ := resp["status_code"].(float64); int(code) != 401 {
		t.Fatalf("status_code want 401 got %v", resp["status_code"])
	}
}

func TestIsIssuedAfterInvalidBefore(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Minute)

	if !isIssuedAfterInvalidBefore(jwt.NewNumericDate(now), nil) {
		t.Fatalf("nil invalid-before should always pass")
	}
	if isIssuedAfterInvalidBefore(nil, &now) {
		t.Fatalf("missing issued-at should fail a set invalid-before")
	}
	if isIssuedAfterInvalidBefore(jwt.NewNumericDate(earlier), &now) {
		t.Fatalf("token issued before the cutoff should be rejected")
	}
	if !isIssuedAfterInvalidBefore(jwt.NewNumericDate(now), &earlier) {
		t.Fatalf("token issued after the cutoff should pass")
	}

	if !isIssuedAfterInvalidBeforeUnix(jwt.NewNumericDate(now), 0) {
		t.Fatalf("zero unix cutoff should always pass")
	}
	if isIssuedAfterInvalidBeforeUnix(jwt.NewNumericDate(earlier), now.Unix()) {
		t.Fatalf("token issued before the unix cutoff should be rejected")
	}
}
