package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrInvalidCredentials is returned when the login endpoint rejects the
	// submitted credentials with HTTP 400.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrService is returned for any other non-success answer or transport
	// failure from the authentication endpoints.
	ErrService = errors.New("authentication service error")
	// ErrConflict is returned when registration hits an existing account.
	// The message text is a user-visible contract and must stay exactly as is.
	ErrConflict = errors.New("Account already exists")
	// ErrValidation is returned for any other 400 from registration; the
	// verbatim response body is attached by wrapping.
	ErrValidation = errors.New("registration rejected")
)

// conflictMarker is the substring the portal backend embeds in duplicate
// account responses.
const conflictMarker = "Account already exists"

// Client submits credentials and registration forms to the portal.
//
// Client instances are intended to be configured during initialization and
// then treated as immutable.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	loginPath    string
	registerPath string
}

// NewClient creates an authentication endpoint Client. A nil httpClient falls
// back to [http.DefaultClient].
func NewClient(httpClient *http.Client, baseURL, loginPath, registerPath string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient:   httpClient,
		baseURL:      strings.TrimRight(baseURL, "/"),
		loginPath:    loginPath,
		registerPath: registerPath,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login posts the submitted credentials and returns the issued bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}

	resp, err := c.post(ctx, c.loginPath, body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}
	defer drainClose(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		var out loginResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return "", fmt.Errorf("%w: decode login response: %v", ErrService, err)
		}
		return out.Token, nil
	case resp.StatusCode == http.StatusBadRequest:
		return "", ErrInvalidCredentials
	default:
		return "", fmt.Errorf("%w: status %d", ErrService, resp.StatusCode)
	}
}

// Register posts the full registration form. The form is marshalled as-is;
// the server ignores fields it does not know.
func (c *Client) Register(ctx context.Context, form any) error {
	body, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrService, err)
	}

	resp, err := c.post(ctx, c.registerPath, body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrService, err)
	}
	defer drainClose(resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	if resp.StatusCode == http.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		if strings.Contains(string(raw), conflictMarker) {
			return ErrConflict
		}
		return fmt.Errorf("%w: %s", ErrValidation, string(raw))
	}

	return fmt.Errorf("%w: status %d", ErrService, resp.StatusCode)
}

func (c *Client) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.httpClient.Do(req)
}

func drainClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
