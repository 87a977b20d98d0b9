package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://api.mercadopago.com"

var (
	// ErrEmptyPreference is returned when the gateway answers without a
	// usable preference id or redirect link.
	ErrEmptyPreference = errors.New("mercadopago: preference response missing id or init_point")
	// ErrEmptyStatus is returned when a payment lookup answers without a
	// status. Treated as a hard upstream failure, never as "pending".
	ErrEmptyStatus = errors.New("mercadopago: payment response missing status")
)

// Client consumes the two gateway operations this system depends on:
// creating a checkout preference and reading a payment's current status.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

type Option func(*Client)

// WithBaseURL points the client at a different API host (tests, sandboxes).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

func New(accessToken string, opts ...Option) *Client {
	c := &Client{
		baseURL:     defaultBaseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Preference is the created checkout session: Id is stored on the Payment
// row, InitPoint is the redirect link handed back to the caller.
type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// Payment is the authoritative payment state as reported by the gateway.
type Payment struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type preferenceItem struct {
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type preferenceRequest struct {
	Items []preferenceItem `json:"items"`
}

// CreatePreference creates a checkout preference for the given amount and
// returns the gateway reference id plus the redirect link.
func (c *Client) CreatePreference(ctx context.Context, amount decimal.Decimal, description string) (*Preference, error) {
	body, err := json.Marshal(preferenceRequest{
		Items: []preferenceItem{{
			Title:     description,
			Quantity:  1,
			UnitPrice: amount.StringFixed(2),
		}},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: create preference: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("mercadopago: create preference: unexpected status %d", resp.StatusCode)
	}

	var pref Preference
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return nil, fmt.Errorf("mercadopago: create preference: decode: %w", err)
	}
	if pref.ID == "" || pref.InitPoint == "" {
		return nil, ErrEmptyPreference
	}
	return &pref, nil
}

// GetPayment fetches the current status of a payment by its gateway id.
func (c *Client) GetPayment(ctx context.Context, externalID string) (*Payment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/payments/"+externalID, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: get payment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mercadopago: get payment: unexpected status %d", resp.StatusCode)
	}

	var p Payment
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("mercadopago: get payment: decode: %w", err)
	}
	if p.Status == "" {
		return nil, ErrEmptyStatus
	}
	return &p, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
}
