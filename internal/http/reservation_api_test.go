package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"closetluna/internal/repos"
)

func TestReservationFlowOverAPI(t *testing.T) {
	app, db := newAPIApp(t)
	items := repos.NewItemRepo(db)

	// reserve seeded item 3 paying efectivo
	resp := postJSON(t, app, "/api/v1/reservations",
		`{"itemId":"3","userName":"Ana","userPhone":"+507 6123 4567","paymentMethod":"efectivo"}`, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create: want 200, got %d", resp.StatusCode)
	}
	var created struct {
		Success     bool `json:"success"`
		Reservation struct {
			ID            string `json:"id"`
			ItemID        string `json:"item_id"`
			Status        string `json:"status"`
			PaymentMethod string `json:"payment_method"`
		} `json:"reservation"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if !created.Success || created.Reservation.ItemID != "3" || created.Reservation.Status != "active" {
		t.Fatalf("bad create response: %+v", created)
	}
	if created.Reservation.PaymentMethod != "efectivo" {
		t.Fatalf("want efectivo, got %s", created.Reservation.PaymentMethod)
	}

	// the item is now held
	it, err := items.Get("3")
	if err != nil {
		t.Fatal(err)
	}
	if it.Available {
		t.Fatal("item 3 should be unavailable after reservation")
	}

	// a repeat reservation conflicts
	resp2 := postJSON(t, app, "/api/v1/reservations",
		`{"itemId":"3","userName":"Carla","userPhone":"+507 6999 0000","paymentMethod":"yappy"}`, nil)
	if resp2.StatusCode != http.StatusConflict {
		t.Fatalf("repeat create: want 409, got %d", resp2.StatusCode)
	}

	// creating also identified the session; listing returns the reservation
	cookies := identityCookies(resp)
	listReq := httptest.NewRequest("GET", "/api/v1/reservations", nil)
	for _, ck := range cookies {
		listReq.AddCookie(ck)
	}
	resp3, err := app.Test(listReq)
	if err != nil {
		t.Fatal(err)
	}
	var listed struct {
		Reservations []struct {
			ID   string `json:"id"`
			Item struct {
				Name string `json:"name"`
			} `json:"clothing_items"`
		} `json:"reservations"`
	}
	if err := json.NewDecoder(resp3.Body).Decode(&listed); err != nil {
		t.Fatal(err)
	}
	if len(listed.Reservations) != 1 || listed.Reservations[0].ID != created.Reservation.ID {
		t.Fatalf("want the created reservation, got %+v", listed.Reservations)
	}
	if listed.Reservations[0].Item.Name != "Vestido Floral" {
		t.Fatalf("missing item snapshot: %+v", listed.Reservations[0])
	}
}

func TestReservationAPIValidation(t *testing.T) {
	app, _ := newAPIApp(t)

	// unknown item
	resp := postJSON(t, app, "/api/v1/reservations",
		`{"itemId":"999","userName":"Ana","userPhone":"+507 6123 4567","paymentMethod":"yappy"}`, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown item: want 404, got %d", resp.StatusCode)
	}

	// payment method outside the enum
	resp2 := postJSON(t, app, "/api/v1/reservations",
		`{"itemId":"1","userName":"Ana","userPhone":"+507 6123 4567","paymentMethod":"tarjeta"}`, nil)
	if resp2.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad payment: want 400, got %d", resp2.StatusCode)
	}

	// missing identity
	resp3 := postJSON(t, app, "/api/v1/reservations",
		`{"itemId":"1","paymentMethod":"yappy"}`, nil)
	if resp3.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing identity: want 400, got %d", resp3.StatusCode)
	}

	// anonymous list is an empty collection, not an error
	resp4, err := app.Test(httptest.NewRequest("GET", "/api/v1/reservations", nil))
	if err != nil {
		t.Fatal(err)
	}
	var listed struct {
		Reservations []any `json:"reservations"`
	}
	if err := json.NewDecoder(resp4.Body).Decode(&listed); err != nil {
		t.Fatal(err)
	}
	if resp4.StatusCode != http.StatusOK || len(listed.Reservations) != 0 {
		t.Fatalf("anonymous list: status=%d body=%+v", resp4.StatusCode, listed)
	}
}
