package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/net/publicsuffix"
)

// defaultCSRFHeader is used for the login form when the login page does not
// publish a header name.
const defaultCSRFHeader = "X-CSRF-TOKEN"

type HTTPClient struct {
	baseURL  *url.URL
	http     *http.Client
	registry *prometheus.Registry
}

type Option func(*HTTPClient)

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithTransport replaces the underlying round tripper (instrumentation is
// still applied on top of it).
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) { c.http.Transport = rt }
}

func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q: scheme and host required", baseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	c := &HTTPClient{
		baseURL:  u,
		http:     &http.Client{Jar: jar, Transport: http.DefaultTransport},
		registry: prometheus.NewRegistry(),
	}
	c.http.CheckRedirect = c.checkRedirect
	for _, o := range opts {
		o(c)
	}

	c.http.Transport = newRequestMetrics(c.registry).instrument(c.http.Transport)
	return c, nil
}

// Registry holds the request metrics of this client.
func (c *HTTPClient) Registry() *prometheus.Registry {
	return c.registry
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// maxRedirects matches the net/http default.
const maxRedirects = 10

// checkRedirect stops at the first redirect of an API call. The backend
// answers an API call without a session with a redirect to the login page,
// and following it would turn a DELETE or PUT into a GET of that page.
// Page loads and the login form follow redirects as usual.
func (c *HTTPClient) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) > 0 && strings.HasPrefix(via[0].URL.Path, c.baseURL.Path+"/api/") {
		return http.ErrUseLastResponse
	}
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	return nil
}

func (c *HTTPClient) url(path string) string {
	return c.baseURL.String() + path
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, token *models.CSRFToken) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if token != nil && token.Valid() {
		req.Header.Set(token.Header, token.Value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: %w", method, path, ErrUnavailable, err)
	}

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		loc := resp.Header.Get("Location")
		drain(resp)
		return nil, fmt.Errorf("%s %s: redirected to %q: %w", method, path, loc, ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		drain(resp)
		return nil, &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}
	return resp, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// getList fetches a JSON array. 204 and a null body both yield an empty slice.
func getList[T any](ctx context.Context, c *HTTPClient, path string) ([]T, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	defer drain(resp)

	if resp.StatusCode == http.StatusNoContent {
		return []T{}, nil
	}

	var items []T
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("GET %s: decode: %w", path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *HTTPClient) mutate(ctx context.Context, method, path string, body any, token models.CSRFToken) error {
	resp, err := c.do(ctx, method, path, body, &token)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

func (c *HTTPClient) ListAllComments(ctx context.Context) ([]models.Comment, error) {
	return getList[models.Comment](ctx, c, "/api/admin/comments")
}

func (c *HTTPClient) DeleteAdminComment(ctx context.Context, id uuid.UUID, token models.CSRFToken) error {
	return c.mutate(ctx, http.MethodDelete, "/api/admin/comments/"+id.String(), nil, token)
}

func (c *HTTPClient) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	return getList[models.Recipe](ctx, c, "/api/admin/recipes")
}

func (c *HTTPClient) DeleteRecipe(ctx context.Context, id uuid.UUID, token models.CSRFToken) error {
	return c.mutate(ctx, http.MethodDelete, "/api/admin/recipes/"+id.String(), nil, token)
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	return getList[models.User](ctx, c, "/api/admin/users")
}

func (c *HTTPClient) UpdateUserStatus(ctx context.Context, id uuid.UUID, active bool, token models.CSRFToken) error {
	path := fmt.Sprintf("/api/admin/users/%s/status", id)
	return c.mutate(ctx, http.MethodPut, path, models.StatusRequest{IsActive: active}, token)
}

func (c *HTTPClient) UpdateUserRole(ctx context.Context, id uuid.UUID, role string, token models.CSRFToken) error {
	path := fmt.Sprintf("/api/admin/users/%s/role", id)
	return c.mutate(ctx, http.MethodPut, path, models.RoleRequest{Role: role}, token)
}

func (c *HTTPClient) Total(ctx context.Context, counter models.Counter) (int64, error) {
	path := "/api/admin/total-" + string(counter)

	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return 0, err
	}
	defer drain(resp)

	var n int64
	if err := json.NewDecoder(resp.Body).Decode(&n); err != nil {
		return 0, fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return n, nil
}

func (c *HTTPClient) ListRecipeComments(ctx context.Context, recipeID uuid.UUID) ([]models.Comment, error) {
	return getList[models.Comment](ctx, c, "/api/comments/"+recipeID.String())
}

func (c *HTTPClient) DeleteComment(ctx context.Context, id uuid.UUID, token models.CSRFToken) error {
	return c.mutate(ctx, http.MethodDelete, "/api/comments/delete/"+id.String(), nil, token)
}
