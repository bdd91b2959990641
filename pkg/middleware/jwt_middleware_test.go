package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gigwise/pkg/utils"
)

func newAuthedRouter(role string) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	reached := false
	r := gin.New()
	group := r.Group("/")
	group.Use(JWTAuthMiddleware())
	if role != "" {
		group.Use(RoleMiddleware(role))
	}
	group.GET("/ping", func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})
	return r, &reached
}

func TestJWTAuthMissingHeader(t *testing.T) {
	r, reached := newAuthedRouter("")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if *reached {
		t.Error("handler ran without a token")
	}
}

func TestJWTAuthMalformedToken(t *testing.T) {
	r, reached := newAuthedRouter("")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if *reached {
		t.Error("handler ran with a malformed token")
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	r, reached := newAuthedRouter("")

	token, err := utils.CreateToken(uuid.New(), "user")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !*reached {
		t.Error("handler never ran")
	}
}

func TestRoleMiddlewareRejectsNonAdmin(t *testing.T) {
	r, reached := newAuthedRouter("admin")

	token, err := utils.CreateToken(uuid.New(), "user")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if *reached {
		t.Error("admin handler ran for a plain user")
	}
}

func TestRoleMiddlewareAllowsAdmin(t *testing.T) {
	r, reached := newAuthedRouter("admin")

	token, err := utils.CreateToken(uuid.New(), "admin")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !*reached {
		t.Error("admin handler never ran")
	}
}
