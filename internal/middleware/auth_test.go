package middleware

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
)

func TestRequireAPIUserWithoutSession(t *testing.T) {
	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore(session.Config{})
	app.Use(sessionMiddleware)

	m := NewAuthMiddleware()
	app.Get("/protected", m.RequireAPIUser, func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	req, _ := http.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireAPIUserWithSession(t *testing.T) {
	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore(session.Config{})
	app.Use(sessionMiddleware)

	// Login stub writes the same session keys as the OIDC callback.
	app.Post("/test-login", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		sess.Set("user_sub", "user-123")
		sess.Set("user_email", "creator@example.com")
		return c.SendString("ok")
	})

	m := NewAuthMiddleware()
	app.Get("/protected", m.RequireAPIUser, func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	loginReq, _ := http.NewRequest("POST", "/test-login", nil)
	loginResp, err := app.Test(loginReq)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}

	req, _ := http.NewRequest("GET", "/protected", nil)
	for _, cookie := range loginResp.Cookies() {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
