// Package backend is the HTTP client for the clinical administration
// API.  Every operation takes the session's credential explicitly —
// there is no ambient global — and attaches it as an HTTP Basic
// Authorization header.  Read operations degrade to an empty
// collection on any failure; write operations surface the server's
// error message to the caller.  Nothing is retried.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/clinicore/admin-dashboard/internal/model"
)

// ErrNoCredential is returned by write operations invoked without a
// stored credential.  The auth middleware redirects such requests to
// the login page long before they reach this package; the sentinel
// exists so a missing credential fails closed instead of sending a
// malformed header to the backend.
var ErrNoCredential = errors.New("no credential")

// Client calls the clinical backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL, e.g.
// "http://localhost:8081/api".  A trailing slash is trimmed so paths
// can always start with "/".
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// newRequest assembles an authenticated JSON request.  The body, when
// present, is marshalled and the Content-Type set; the credential
// header is attached unmodified.
func (c *Client) newRequest(ctx context.Context, cred model.Credential, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var rd io.Reader
	if body != nil {
		bs, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(bs)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", cred.AuthHeader())
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// list issues an authenticated GET for a JSON array and decodes it
// into out.  All failures — missing credential, network error,
// undecodable body, non-2xx status — leave out untouched so the
// caller renders an empty collection; they are logged, never
// propagated.  Statuses in tolerated are treated as a valid empty
// result without logging.
func (c *Client) list(ctx context.Context, cred model.Credential, path string, out any, tolerated ...int) {
	if cred.Empty() {
		log.Printf("backend: GET %s without credential, failing closed", path)
		return
	}
	req, err := c.newRequest(ctx, cred, http.MethodGet, path, nil, nil)
	if err != nil {
		log.Printf("backend: build GET %s: %v", path, err)
		return
	}
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("backend: GET %s: %v", path, err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		for _, s := range tolerated {
			if resp.StatusCode == s {
				return
			}
		}
		log.Printf("backend: GET %s: status %d", path, resp.StatusCode)
		return
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("backend: GET %s: decode: %v", path, err)
	}
}

// create issues an authenticated POST and decodes the created record
// into out.  On a non-2xx response the server's "error" field becomes
// the returned error, falling back to the given message when the body
// carries none.  Network failures are logged and returned.
func (c *Client) create(ctx context.Context, cred model.Credential, path string, query url.Values, body, out any, fallback string) error {
	if cred.Empty() {
		return ErrNoCredential
	}
	req, err := c.newRequest(ctx, cred, http.MethodPost, path, query, body)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("backend: POST %s: %v", path, err)
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.New(serverError(resp.Body, fallback))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Printf("backend: POST %s: decode: %v", path, err)
			return errors.New(fallback)
		}
	}
	return nil
}

// delete issues an authenticated DELETE and reports bare success.  No
// response body is parsed and no cause is distinguished.
func (c *Client) delete(ctx context.Context, cred model.Credential, path string) bool {
	if cred.Empty() {
		log.Printf("backend: DELETE %s without credential, failing closed", path)
		return false
	}
	req, err := c.newRequest(ctx, cred, http.MethodDelete, path, nil, nil)
	if err != nil {
		log.Printf("backend: build DELETE %s: %v", path, err)
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("backend: DELETE %s: %v", path, err)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

// serverError extracts the backend's error message convention — a
// JSON object with an "error" string — or returns the fallback.
func serverError(r io.Reader, fallback string) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return fallback
}

// CheckUsername is the login probe: an authenticated GET against the
// check-username endpoint using a credential built from the submitted
// username and password.  A 2xx means the pair is valid.  The error
// is non-nil only for connection-level failures, letting the login
// page distinguish "invalid username or password" from "backend
// down".
func (c *Client) CheckUsername(ctx context.Context, username, password string) (bool, error) {
	cred := model.NewCredential(username, password)
	req, err := c.newRequest(ctx, cred, http.MethodGet, "/auth/check-username/"+url.PathEscape(username), nil, nil)
	if err != nil {
		return false, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("backend: login probe: %v", err)
		return false, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode <= 299, nil
}
