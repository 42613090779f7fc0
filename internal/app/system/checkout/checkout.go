// internal/app/system/checkout/checkout.go

// Package checkout talks to the external hosted-checkout provider. The
// provider owns the payment flow end to end: we create a session, send
// the user to the returned URL, and later exchange the session id for
// the payment outcome. Handlers depend on the Provider interface so
// tests can substitute a fake.
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus values reported by the provider.
const (
	StatusPaid   = "paid"
	StatusUnpaid = "unpaid"
)

// CreateSessionParams describes one checkout session.
type CreateSessionParams struct {
	Amount        int64  // minor units
	Currency      string // ISO 4217, lowercase
	ProductName   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	// Metadata is echoed back verbatim on session retrieval; the
	// confirmation flow relies on it to learn what was bought.
	Metadata map[string]string
}

// Session is the result of creating a checkout session.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"` // redirect the customer here
}

// SessionDetails is the state of a session after the customer returns.
type SessionDetails struct {
	ID              string            `json:"id"`
	PaymentIntentID string            `json:"payment_intent"`
	PaymentStatus   string            `json:"payment_status"`
	AmountTotal     int64             `json:"amount_total"`
	Currency        string            `json:"currency"`
	CustomerEmail   string            `json:"customer_email"`
	Metadata        map[string]string `json:"metadata"`
}

// Provider is the external checkout service as the handlers see it.
type Provider interface {
	CreateSession(ctx context.Context, p CreateSessionParams) (Session, error)
	GetSession(ctx context.Context, sessionID string) (SessionDetails, error)
}

// Client is the HTTP implementation of Provider.
type Client struct {
	baseURL   string
	secretKey string
	httpc     *http.Client
}

// NewClient builds a Client for the provider at baseURL, authenticating
// with the account's secret key.
func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		httpc:     &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateSession creates a hosted checkout session. A fresh client
// reference id is attached so the session can be traced back from
// provider dashboards and webhooks.
func (c *Client) CreateSession(ctx context.Context, p CreateSessionParams) (Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("client_reference_id", uuid.NewString())
	form.Set("customer_email", p.CustomerEmail)
	form.Set("success_url", p.SuccessURL)
	form.Set("cancel_url", p.CancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", p.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(p.Amount, 10))
	form.Set("line_items[0][price_data][product_data][name]", p.ProductName)
	for k, v := range p.Metadata {
		form.Set("metadata["+k+"]", v)
	}

	var sess Session
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", form, &sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// GetSession retrieves a session by id.
func (c *Client) GetSession(ctx context.Context, sessionID string) (SessionDetails, error) {
	var details SessionDetails
	path := "/v1/checkout/sessions/" + url.PathEscape(sessionID)
	if err := c.do(ctx, http.MethodGet, path, nil, &details); err != nil {
		return SessionDetails{}, err
	}
	return details, nil
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("checkout request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Provider errors carry a JSON body; keep a short slice of it
		// for the log line without trusting its size.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("checkout request failed: %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
