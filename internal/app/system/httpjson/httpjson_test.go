package httpjson

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type testBody struct {
	Name string `json:"name"`
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	var dst testBody
	if err := Decode(req, &dst); err == nil {
		t.Fatal("expected an error for unknown fields")
	}
}

func TestDecode_RejectsTrailingDocument(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
	var dst testBody
	if err := Decode(req, &dst); err == nil {
		t.Fatal("expected an error for a second JSON document")
	}
}

func TestDecode_AcceptsSingleObject(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`))
	var dst testBody
	if err := Decode(req, &dst); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if dst.Name != "a" {
		t.Errorf("got %q", dst.Name)
	}
}

func TestError_ShapesBody(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "club not found")

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"message":"club not found"}` {
		t.Errorf("unexpected body %s", got)
	}
}
