package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"closetluna/internal/config"
	"closetluna/internal/http/handlers"
	"closetluna/internal/repos"
)

// Minimal app with only the JSON API mounted.
func newAPIApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	app := fiber.New()
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, config.Config{})
	api := app.Group("/api/v1")
	api.Get("/session", deps.SessionHandler.Get)
	api.Post("/session", deps.SessionHandler.Set)
	api.Delete("/session", deps.SessionHandler.Clear)
	api.Get("/reservations", deps.ReservationHandler.ListAPI)
	api.Post("/reservations", deps.ReservationHandler.CreateAPI)

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path, body string, cookies []*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func identityCookies(resp *http.Response) []*http.Cookie {
	var out []*http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "user_name" || ck.Name == "user_phone" {
			out = append(out, &http.Cookie{Name: ck.Name, Value: ck.Value})
		}
	}
	return out
}

func TestSessionEndpointAnonymous(t *testing.T) {
	app, _ := newAPIApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/session", nil))
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Session *struct{ Name, Phone string } `json:"session"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Session != nil {
		t.Fatalf("want null session, got %+v", body.Session)
	}
}

func TestSessionEndpointRejectsBadBodies(t *testing.T) {
	app, _ := newAPIApp(t)

	for _, body := range []string{
		`{"name":"Ana"}`,                  // missing phone
		`{"phone":"+507 6123 4567"}`,      // missing name
		`{"name":"","phone":"123"}`,       // empty name
		`{"name":123,"phone":"123"}`,      // name is not a string
		`{"name":"Ana","phone":["nope"]}`, // phone is not a string
	} {
		resp := postJSON(t, app, "/api/v1/session", body, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d", body, resp.StatusCode)
		}
	}
}

func TestSessionEndpointLifecycle(t *testing.T) {
	app, _ := newAPIApp(t)

	resp := postJSON(t, app, "/api/v1/session", `{"name":"Ana","phone":"+507 6123 4567"}`, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("set: want 200, got %d", resp.StatusCode)
	}
	cookies := identityCookies(resp)
	if len(cookies) != 2 {
		t.Fatalf("want both identity cookies, got %d", len(cookies))
	}

	// identified
	req := httptest.NewRequest("GET", "/api/v1/session", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp2, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Session *struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
		} `json:"session"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Session == nil || body.Session.Name != "Ana" || body.Session.Phone != "+507 6123 4567" {
		t.Fatalf("session round trip failed: %+v", body.Session)
	}

	// clear
	delReq := httptest.NewRequest("DELETE", "/api/v1/session", nil)
	for _, ck := range cookies {
		delReq.AddCookie(ck)
	}
	resp3, err := app.Test(delReq)
	if err != nil {
		t.Fatal(err)
	}
	if resp3.StatusCode != http.StatusOK {
		t.Fatalf("clear: want 200, got %d", resp3.StatusCode)
	}
	for _, ck := range resp3.Cookies() {
		if (ck.Name == "user_name" || ck.Name == "user_phone") && ck.Value != "" {
			t.Fatalf("clear should blank %s", ck.Name)
		}
	}
}
