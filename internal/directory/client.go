package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.openbrewerydb.org/v1/breweries"

// searchPerPage matches the page size the frontend was built around.
const searchPerPage = "10"

// UpstreamError carries a non-success status from the directory service so the
// caller can propagate it instead of masking it as a server error.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("directory returned status %d", e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) GetByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, c.baseURL+"/"+url.PathEscape(id))
}

func (c *Client) SearchByCity(ctx context.Context, city string) (json.RawMessage, error) {
	return c.search(ctx, "by_city", city)
}

func (c *Client) SearchByName(ctx context.Context, name string) (json.RawMessage, error) {
	return c.search(ctx, "by_name", name)
}

func (c *Client) SearchByType(ctx context.Context, breweryType string) (json.RawMessage, error) {
	return c.search(ctx, "by_type", breweryType)
}

// GetName resolves the display name of a brewery, denormalized onto reviews at
// write time.
func (c *Client) GetName(ctx context.Context, id string) (string, error) {
	raw, err := c.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	var brewery struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &brewery); err != nil {
		return "", fmt.Errorf("directory response: %w", err)
	}
	return brewery.Name, nil
}

func (c *Client) search(ctx context.Context, filter, value string) (json.RawMessage, error) {
	params := url.Values{
		filter:     {value},
		"per_page": {searchPerPage},
	}
	return c.get(ctx, c.baseURL+"?"+params.Encode())
}

func (c *Client) get(ctx context.Context, u string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("directory response: %w", err)
	}
	return raw, nil
}
