// Package zendesk implements the ticketing collaborator against the
// Zendesk Support REST API.
package zendesk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Ahmed-Anwar-PMO/notesync/internal/notesync"
)

// Config carries the Zendesk endpoint and credentials.
type Config struct {
	// Subdomain is the account subdomain, e.g. "aleena" for
	// aleena.zendesk.com.
	Subdomain string

	// Email and APIToken form the token-auth pair: basic auth with
	// username "<email>/token" and the API token as password.
	Email    string
	APIToken string

	// Timeout bounds every request. Zero means 10s.
	Timeout time.Duration

	// BaseURL overrides the derived https://<subdomain>.zendesk.com/api/v2
	// endpoint. Tests point this at a local server.
	BaseURL string
}

// Client talks to the Zendesk API. It memoizes user-name lookups for its
// lifetime so resolving the same author twice costs one call.
type Client struct {
	baseURL  string
	email    string
	apiToken string
	http     *http.Client
	limiter  *rate.Limiter
	now      func() time.Time

	mu        sync.Mutex
	userNames map[int64]string
}

// NewClient builds a Client from cfg. Requests are paced to stay under
// Zendesk's rate limit.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.zendesk.com/api/v2", cfg.Subdomain)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:   base,
		email:     cfg.Email,
		apiToken:  cfg.APIToken,
		http:      &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
		now:       time.Now,
		userNames: make(map[int64]string),
	}
}

type commentsResponse struct {
	Comments []comment `json:"comments"`
}

type comment struct {
	ID        int64  `json:"id"`
	Body      string `json:"body"`
	Public    bool   `json:"public"`
	AuthorID  int64  `json:"author_id"`
	CreatedAt string `json:"created_at"`
}

type userResponse struct {
	User struct {
		Name string `json:"name"`
	} `json:"user"`
}

// ListPrivateAnnotations fetches the ticket's comments, keeps the private
// ones, resolves author names, and returns them oldest first. The API is
// asked for ascending order, but the result is re-sorted locally: source
// ordering is treated as unordered unless sorted here.
func (c *Client) ListPrivateAnnotations(ctx context.Context, ticketID int64) ([]notesync.Annotation, error) {
	path := fmt.Sprintf("/tickets/%d/comments.json", ticketID)
	notFound := notesync.NewError(notesync.CodeTicketNotFound, "ticket %d not found", ticketID)
	var resp commentsResponse
	if err := c.get(ctx, path, url.Values{"sort_order": {"asc"}}, &resp, notFound); err != nil {
		return nil, err
	}

	annotations := make([]notesync.Annotation, 0, len(resp.Comments))
	for _, com := range resp.Comments {
		if com.Public {
			continue
		}
		createdAt, err := time.Parse(time.RFC3339, com.CreatedAt)
		if err != nil {
			// Zendesk timestamps are RFC 3339 in practice; an unparsable
			// one falls back to "now" rather than aborting the run.
			createdAt = c.now().UTC()
		}
		author, err := c.userName(ctx, com.AuthorID)
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, notesync.Annotation{
			ID:        com.ID,
			Body:      com.Body,
			Author:    author,
			CreatedAt: createdAt,
			Private:   true,
		})
	}

	sort.SliceStable(annotations, func(i, j int) bool {
		return annotations[i].CreatedAt.Before(annotations[j].CreatedAt)
	})
	return annotations, nil
}

// userName resolves a Zendesk user id to a display name, memoized per
// client.
func (c *Client) userName(ctx context.Context, userID int64) (string, error) {
	c.mu.Lock()
	name, ok := c.userNames[userID]
	c.mu.Unlock()
	if ok {
		return name, nil
	}

	// A vanished author is a transport-level oddity, not a missing ticket.
	notFound := notesync.NewError(notesync.CodeTransport, "zendesk user %d not found", userID)
	var resp userResponse
	if err := c.get(ctx, fmt.Sprintf("/users/%d.json", userID), nil, &resp, notFound); err != nil {
		return "", err
	}
	name = resp.User.Name
	if name == "" {
		name = fmt.Sprintf("User %d", userID)
	}

	c.mu.Lock()
	c.userNames[userID] = name
	c.mu.Unlock()
	return name, nil
}

// get performs one authenticated GET. notFound is returned verbatim on a
// 404 so each call site classifies its own missing resource.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any, notFound error) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return notesync.WrapError(notesync.CodeTransport, err, "zendesk: request canceled")
	}
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return notesync.WrapError(notesync.CodeTransport, err, "zendesk: build request %s", path)
	}
	req.SetBasicAuth(c.email+"/token", c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return notesync.WrapError(notesync.CodeTransport, err, "zendesk: GET %s", path)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return notFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return notesync.NewError(notesync.CodeTransport,
			"zendesk: GET %s failed: %d %s", path, resp.StatusCode, bodyExcerpt(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return notesync.WrapError(notesync.CodeTransport, err, "zendesk: decode %s", path)
	}
	return nil
}

// bodyExcerpt reads a bounded prefix of an error response body for
// operator-facing messages.
func bodyExcerpt(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return string(b)
}
