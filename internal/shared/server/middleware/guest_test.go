package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGuestIdentityUsesHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GuestIdentity())

	var got string
	r.GET("/x", func(c *gin.Context) {
		got = GuestIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(GuestIDHeader, "guest-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got != "guest-123" {
		t.Fatalf("guest id = %q, want guest-123", got)
	}
	if w.Header().Get(GuestIDHeader) != "guest-123" {
		t.Fatalf("response header = %q, want guest-123", w.Header().Get(GuestIDHeader))
	}
}

func TestGuestIdentityMintsWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GuestIdentity())

	var got string
	r.GET("/x", func(c *gin.Context) {
		got = GuestIDFromContext(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if got == "" {
		t.Fatal("expected a minted guest id")
	}
	if w.Header().Get(GuestIDHeader) != got {
		t.Fatalf("response header = %q, want %q", w.Header().Get(GuestIDHeader), got)
	}
}

func TestGuestIDFromContextMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := GuestIDFromContext(c); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
	if got := GuestIDFromContext(nil); got != "" {
		t.Fatalf("nil context got %q, want empty", got)
	}
}
