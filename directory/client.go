package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrUnavailable is returned when the directory endpoint cannot be reached or
// answers with a non-success status.
var ErrUnavailable = errors.New("directory unavailable")

// Record is the canonical user profile held by the directory service. It is
// fetched read-only; this package never writes it back.
type Record struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	MobileNumber string `json:"mobileNumber"`
	MagicWord    string `json:"magicWord"`
	Role         string `json:"role"`
	Status       string `json:"status"`
}

// Client fetches the user directory over HTTP.
//
// Client instances are intended to be configured during initialization and
// then treated as immutable.
type Client struct {
	httpClient *http.Client
	baseURL    string
	usersPath  string
}

// NewClient creates a directory Client for the given portal base URL. A nil
// httpClient falls back to [http.DefaultClient].
func NewClient(httpClient *http.Client, baseURL, usersPath string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		usersPath:  usersPath,
	}
}

// FetchAll issues a read against the directory endpoint and decodes the full
// record set. Transport failures and non-2xx responses both surface as
// [ErrUnavailable].
func (c *Client) FetchAll(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.usersPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	return records, nil
}

// FindByEmail returns the first record whose email matches exactly
// (case-sensitive). The directory guarantees email uniqueness, so first match
// is the only match.
func FindByEmail(records []Record, email string) (Record, bool) {
	for _, r := range records {
		if r.Email == email {
			return r, true
		}
	}
	return Record{}, false
}

// FindByChallenge returns the first record whose mobile number and magic word
// both match exactly.
func FindByChallenge(records []Record, mobileNumber, magicWord string) (Record, bool) {
	for _, r := range records {
		if r.MobileNumber == mobileNumber && r.MagicWord == magicWord {
			return r, true
		}
	}
	return Record{}, false
}
