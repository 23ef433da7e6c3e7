package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func identityChain(issuer *Issuer, require bool) echo.HandlerFunc {
	handler := func(c echo.Context) error {
		id, ok := UserIDFromContext(c.Request().Context())
		if !ok {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.JSON(http.StatusOK, map[string]int64{"user_id": id})
	}
	if require {
		handler = RequireUser()(handler)
	}
	return Identity(issuer)(handler)
}

func TestIdentity_BearerToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	token, err := issuer.Issue(99)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handled := false
	h := Identity(issuer)(func(c echo.Context) error {
		handled = true
		id, ok := UserIDFromContext(c.Request().Context())
		if !ok {
			t.Error("expected user id in context")
		}
		if id != 99 {
			t.Errorf("expected user id 99, got %d", id)
		}
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !handled {
		t.Fatal("handler was not invoked")
	}
}

func TestIdentity_UserIDHeader(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "17")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Identity(issuer)(func(c echo.Context) error {
		id, ok := UserIDFromContext(c.Request().Context())
		if !ok || id != 17 {
			t.Errorf("expected user id 17, got %d (ok=%v)", id, ok)
		}
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestIdentity_BearerWinsOverHeader(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	token, err := issuer.Issue(5)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(HeaderUserID, "999")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Identity(issuer)(func(c echo.Context) error {
		id, _ := UserIDFromContext(c.Request().Context())
		if id != 5 {
			t.Errorf("expected token identity 5 to win, got %d", id)
		}
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestIdentity_InvalidTokenDoesNotFallBack(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	req.Header.Set(HeaderUserID, "17")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Identity(issuer)(func(c echo.Context) error {
		if _, ok := UserIDFromContext(c.Request().Context()); ok {
			t.Error("expected no identity for bogus bearer token")
		}
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestIdentity_InvalidHeaderIgnored(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	for _, raw := range []string{"abc", "-3", "0", ""} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if raw != "" {
			req.Header.Set(HeaderUserID, raw)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := Identity(issuer)(func(c echo.Context) error {
			if _, ok := UserIDFromContext(c.Request().Context()); ok {
				t.Errorf("header %q: expected no identity", raw)
			}
			return nil
		})
		if err := h(c); err != nil {
			t.Fatalf("header %q: handler error: %v", raw, err)
		}
	}
}

func TestRequireUser_RejectsAnonymous(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := identityChain(issuer, true)(c)
	if err == nil {
		t.Fatal("expected error for anonymous request")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", httpErr.Code)
	}
}

func TestRequireUser_AllowsAuthenticated(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "3")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := identityChain(issuer, true)(c); err != nil {
		t.Fatalf("expected authenticated request to pass, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}
