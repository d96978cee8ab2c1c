package searchserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchServer = (*Client)(nil)

const (
	// HeaderRequestID carries a per-request correlation ID.
	HeaderRequestID = "X-Request-ID"

	// maxErrorBody bounds how much of a failed response is quoted in errors.
	maxErrorBody = 512
)

// Options configures a Client.
type Options struct {
	// Timeout bounds each request. Zero selects domain.DefaultTimeout.
	Timeout time.Duration

	// RateLimit caps requests per second. Zero means unlimited.
	RateLimit float64

	// Token, when set, is sent as a bearer token.
	Token string

	// UserAgent is sent with every request. Defaults to "docsearch".
	UserAgent string

	// HTTPClient overrides the underlying client. Its Timeout is replaced.
	HTTPClient *http.Client
}

// Client talks to a search server at a fixed base URL.
type Client struct {
	baseURL   string
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewClient creates a client for the server at baseURL.
// The base URL is used verbatim; paths are appended to it as is.
func NewClient(baseURL string, opts Options) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: server URL is empty", domain.ErrInvalidConfig)
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("%w: server URL: %w", domain.ErrInvalidConfig, err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}

	base := http.DefaultTransport
	if opts.HTTPClient != nil && opts.HTTPClient.Transport != nil {
		base = opts.HTTPClient.Transport
	}

	transport := base
	if opts.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: opts.Token,
				TokenType:   "Bearer",
			}),
			Base: base,
		}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "docsearch"
	}

	return &Client{
		baseURL:   baseURL,
		http:      &http.Client{Timeout: timeout, Transport: transport},
		limiter:   limiter,
		userAgent: userAgent,
	}, nil
}

// BaseURL returns the server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// searchBody mirrors the search endpoint with presence checks.
type searchBody struct {
	TotalResults *int      `json:"total_results"`
	Results      []hitBody `json:"results"`
}

type hitBody struct {
	DocID   *domain.DocID  `json:"doc_id"`
	Matches domain.Matches `json:"matches"`
}

// documentBody mirrors the document endpoint with presence checks.
type documentBody struct {
	ID       *domain.DocID `json:"document_id"`
	Filename *string       `json:"filename"`
	Content  *string       `json:"content"`
}

// Search runs a query against the search endpoint.
func (c *Client) Search(ctx context.Context, query string) (*domain.SearchResponse, error) {
	endpoint := c.baseURL + "/search?q=" + EscapeQuery(query)

	var body searchBody
	if err := c.get(ctx, endpoint, &body); err != nil {
		return nil, err
	}

	if body.TotalResults == nil {
		return nil, fmt.Errorf("%w: missing total_results", domain.ErrMalformedResponse)
	}
	if *body.TotalResults > 0 && body.Results == nil {
		return nil, fmt.Errorf("%w: missing results", domain.ErrMalformedResponse)
	}

	resp := &domain.SearchResponse{
		TotalResults: *body.TotalResults,
		Results:      make([]domain.SearchResult, 0, len(body.Results)),
	}
	for i, hit := range body.Results {
		if hit.DocID == nil {
			return nil, fmt.Errorf("%w: result %d has no doc_id", domain.ErrMalformedResponse, i)
		}
		if len(hit.Matches) == 0 {
			return nil, fmt.Errorf("%w: result %d has no matches", domain.ErrMalformedResponse, i)
		}
		resp.Results = append(resp.Results, domain.SearchResult{
			DocID:   *hit.DocID,
			Matches: hit.Matches,
		})
	}

	return resp, nil
}

// Document fetches one document by ID.
func (c *Client) Document(ctx context.Context, id domain.DocID) (*domain.Document, error) {
	params := url.Values{}
	params.Set("docID", id.String())
	endpoint := c.baseURL + "/document?" + params.Encode()

	var body documentBody
	if err := c.get(ctx, endpoint, &body); err != nil {
		return nil, err
	}

	switch {
	case body.ID == nil:
		return nil, fmt.Errorf("%w: document %s has no document_id", domain.ErrMalformedResponse, id)
	case body.Filename == nil:
		return nil, fmt.Errorf("%w: document %s has no filename", domain.ErrMalformedResponse, id)
	case body.Content == nil:
		return nil, fmt.Errorf("%w: document %s has no content", domain.ErrMalformedResponse, id)
	}

	return &domain.Document{
		ID:       *body.ID,
		Filename: *body.Filename,
		Content:  *body.Content,
	}, nil
}

// get performs a single GET and decodes a 2xx JSON body into v.
func (c *Client) get(ctx context.Context, endpoint string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", domain.ErrTransport, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(HeaderRequestID, requestID)
	logger.Request(requestID, req.Method, endpoint)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	logger.Debug("%s -> %s in %s", requestID, resp.Status, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(snippet))
		if msg == "" {
			return fmt.Errorf("%w: %s for %s", domain.ErrHTTPStatus, resp.Status, endpoint)
		}
		return fmt.Errorf("%w: %s for %s: %s", domain.ErrHTTPStatus, resp.Status, endpoint, msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode %s: %w", domain.ErrMalformedResponse, endpoint, err)
	}
	return nil
}

// EscapeQuery percent-encodes a query for the q parameter. Spaces become %20
// rather than '+', so the server sees the text as one opaque value.
func EscapeQuery(query string) string {
	return strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}
