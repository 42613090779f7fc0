package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateSession_SendsFormAndAuth(t *testing.T) {
	var gotAuth string
	var gotForm map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/checkout/sessions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotForm = r.PostForm

		json.NewEncoder(w).Encode(Session{ID: "cs_123", URL: "https://checkout.test/cs_123"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_abc")
	sess, err := c.CreateSession(context.Background(), CreateSessionParams{
		Amount:        2500,
		Currency:      "usd",
		ProductName:   "Chess membership",
		CustomerEmail: "user@test.com",
		SuccessURL:    "https://app.test/success",
		CancelURL:     "https://app.test/cancel",
		Metadata:      map[string]string{"type": "membership", "club_id": "abc123"},
	})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if sess.ID != "cs_123" {
		t.Errorf("expected session cs_123, got %q", sess.ID)
	}
	if gotAuth != "Bearer sk_test_abc" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if got := gotForm["line_items[0][price_data][unit_amount]"]; len(got) != 1 || got[0] != "2500" {
		t.Errorf("unit_amount: got %v", got)
	}
	if got := gotForm["metadata[club_id]"]; len(got) != 1 || got[0] != "abc123" {
		t.Errorf("metadata[club_id]: got %v", got)
	}
	if got := gotForm["client_reference_id"]; len(got) != 1 || got[0] == "" {
		t.Error("expected a client_reference_id")
	}
}

func TestGetSession_DecodesDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/checkout/sessions/cs_123" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(SessionDetails{
			ID:              "cs_123",
			PaymentIntentID: "pi_456",
			PaymentStatus:   StatusPaid,
			AmountTotal:     2500,
			Currency:        "usd",
			CustomerEmail:   "user@test.com",
			Metadata:        map[string]string{"type": "membership"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_abc")
	details, err := c.GetSession(context.Background(), "cs_123")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if details.PaymentIntentID != "pi_456" {
		t.Errorf("expected pi_456, got %q", details.PaymentIntentID)
	}
	if details.PaymentStatus != StatusPaid {
		t.Errorf("expected paid, got %q", details.PaymentStatus)
	}
	if details.Metadata["type"] != "membership" {
		t.Errorf("metadata lost: %v", details.Metadata)
	}
}

func TestGetSession_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"No such checkout session"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_abc")
	if _, err := c.GetSession(context.Background(), "cs_missing"); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}
