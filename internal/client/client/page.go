package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"golang.org/x/net/html"
)

// FetchPage loads an HTML page of the site and extracts what the page
// scripts would read from it: the anti-forgery meta tags and hidden inputs.
func (c *HTTPClient) FetchPage(ctx context.Context, path string) (*models.PageContext, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w: %w", path, ErrUnavailable, err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Method: http.MethodGet, Path: path, Code: resp.StatusCode}
	}
	if isLoginRedirect(resp, path) {
		return nil, fmt.Errorf("GET %s: %w", path, ErrUnauthorized)
	}

	return parsePageContext(resp.Body)
}

// isLoginRedirect reports whether a request for path ended on the login
// page, which is how the backend answers page loads without a session.
func isLoginRedirect(resp *http.Response, path string) bool {
	if resp.Request == nil || resp.Request.URL == nil {
		return false
	}
	return resp.Request.URL.Path == "/login" && !strings.HasPrefix(path, "/login")
}

func parsePageContext(r io.Reader) (*models.PageContext, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	pc := &models.PageContext{Fields: map[string]string{}}
	var formToken string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "meta":
				switch attr(n, "name") {
				case models.CSRFTokenMeta:
					pc.CSRF.Value = attr(n, "content")
				case models.CSRFHeaderMeta:
					pc.CSRF.Header = attr(n, "content")
				}
			case "input":
				if id := attr(n, "id"); id != "" {
					pc.Fields[id] = attr(n, "value")
				}
				if attr(n, "name") == models.CSRFTokenMeta {
					formToken = attr(n, "value")
				}
			}
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(doc)

	if pc.CSRF.Value == "" {
		pc.CSRF.Value = formToken
	}
	return pc, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Login performs the form login and keeps the session cookie in the jar.
// The login form's anti-forgery token is read from the login page first.
func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) error {
	page, err := c.FetchPage(ctx, "/login")
	if err != nil {
		return fmt.Errorf("load login page: %w", err)
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", string(password))
	if page.CSRF.Value != "" {
		form.Set(models.CSRFTokenMeta, page.CSRF.Value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/login"), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	header := page.CSRF.Header
	if header == "" {
		header = defaultCSRFHeader
	}
	if page.CSRF.Value != "" {
		req.Header.Set(header, page.CSRF.Value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("POST /login: %w: %w", ErrUnavailable, err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Method: http.MethodPost, Path: "/login", Code: resp.StatusCode}
	}
	if u := resp.Request.URL; u.Path == "/login" {
		return ErrInvalidCredential
	}
	return nil
}
