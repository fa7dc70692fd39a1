// Package shopify implements the commerce collaborator against the
// Shopify Admin REST API.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/time/rate"

	"github.com/Ahmed-Anwar-PMO/notesync/internal/notesync"
)

// Config carries the Shopify endpoint and credentials.
type Config struct {
	// Store is the shop handle without the .myshopify.com suffix.
	Store string

	// AccessToken is the Admin API access token.
	AccessToken string

	// APIVersion selects the Admin API version path segment, e.g.
	// "2024-01".
	APIVersion string

	// Timeout bounds every request. Zero means 10s.
	Timeout time.Duration

	// BaseURL overrides the derived endpoint. Tests point this at a
	// local server.
	BaseURL string
}

// Client talks to the Shopify Admin API.
type Client struct {
	baseURL     string
	accessToken string
	http        *http.Client
	limiter     *rate.Limiter
}

// NewClient builds a Client from cfg. Requests are paced to the standard
// Admin API limit of two per second.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.myshopify.com/admin/api/%s", cfg.Store, cfg.APIVersion)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:     base,
		accessToken: cfg.AccessToken,
		http:        &http.Client{Timeout: timeout},
		limiter:     rate.NewLimiter(rate.Limit(2), 4),
	}
}

type ordersResponse struct {
	Orders []orderPayload `json:"orders"`
}

type orderPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Note string `json:"note"`
}

type orderUpdate struct {
	Order struct {
		ID   int64  `json:"id"`
		Note string `json:"note"`
	} `json:"order"`
}

// FindOrderByName resolves an order token to the order it names. The
// lookup filters server-side on name and then matches candidates under
// normalized comparison, so a stray near-miss from the API never wins.
func (c *Client) FindOrderByName(ctx context.Context, name string) (notesync.Order, error) {
	params := url.Values{
		"name":   {name},
		"status": {"any"},
		"fields": {"id,name,note"},
	}
	var resp ordersResponse
	if err := c.do(ctx, http.MethodGet, "/orders.json?"+params.Encode(), nil, &resp); err != nil {
		return notesync.Order{}, err
	}
	for _, o := range resp.Orders {
		if sameName(o.Name, name) {
			return notesync.Order{ID: o.ID, Name: o.Name, Note: o.Note}, nil
		}
	}
	return notesync.Order{}, notesync.NewError(notesync.CodeOrderNotFound,
		"order %q not found", name)
}

// UpdateOrderNote overwrites the order's note field with the merged text.
func (c *Client) UpdateOrderNote(ctx context.Context, orderID int64, note string) error {
	var upd orderUpdate
	upd.Order.ID = orderID
	upd.Order.Note = note
	body, err := json.Marshal(upd)
	if err != nil {
		return notesync.WrapError(notesync.CodeValidation, err, "shopify: encode note payload")
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d.json", orderID), body, nil)
}

// sameName compares an order name against a token under normalized
// comparison: NFC form, case-insensitive, ignoring the "#" Shopify
// prepends to order names on some shops.
func sameName(orderName, token string) bool {
	a := norm.NFC.String(strings.TrimPrefix(orderName, "#"))
	b := norm.NFC.String(strings.TrimPrefix(token, "#"))
	return strings.EqualFold(a, b)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return notesync.WrapError(notesync.CodeTransport, err, "shopify: request canceled")
	}
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return notesync.WrapError(notesync.CodeTransport, err, "shopify: build request %s", path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return notesync.WrapError(notesync.CodeTransport, err, "shopify: %s %s", method, path)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return notesync.NewError(notesync.CodeOrderNotFound, "shopify: %s not found", path)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return notesync.NewError(notesync.CodeValidation,
			"shopify: %s %s rejected: %d %s", method, path, resp.StatusCode, bodyExcerpt(resp.Body))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return notesync.NewError(notesync.CodeTransport,
			"shopify: %s %s failed: %d %s", method, path, resp.StatusCode, bodyExcerpt(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return notesync.WrapError(notesync.CodeTransport, err, "shopify: decode %s", path)
	}
	return nil
}

func bodyExcerpt(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return string(b)
}
