// Package polar is a thin typed client for the subset of the Polar REST API
// this application consumes: identity, organization profile, and the
// paginated order listing.
package polar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/world1dan/customers-map/internal/orders"
)

// PageSize is the fixed order-listing page size.
const PageSize = 100

// ErrFetchPage means a page request in the order fetch loop failed. The loop
// aborts and partial results are discarded; there is no retry.
var ErrFetchPage = errors.New("order page fetch failed")

// APIError is a non-2xx response from the API.
type APIError struct {
	Status int
	Path   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("polar: %s returned status %d", e.Path, e.Status)
}

// Client calls the API with a bearer credential obtained from the handshake.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the given API base URL and access token. A nil
// httpClient uses http.DefaultClient. No timeout is imposed here: every
// operation is attempt-once and runs to completion or failure.
func New(baseURL, accessToken string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, token: accessToken, http: httpClient}
}

// Userinfo returns the identity behind the access token.
func (c *Client) Userinfo(ctx context.Context) (Userinfo, error) {
	var u Userinfo
	err := c.get(ctx, "/v1/oauth2/userinfo", nil, &u)
	return u, err
}

// Organization fetches an organization profile by id.
func (c *Client) Organization(ctx context.Context, id string) (Organization, error) {
	var org Organization
	err := c.get(ctx, "/v1/organizations/"+url.PathEscape(id), nil, &org)
	return org, err
}

// ListOrders fetches one page of the order listing. Pages start at 1.
func (c *Client) ListOrders(ctx context.Context, page, limit int) (OrdersPage, error) {
	query := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	var p OrdersPage
	err := c.get(ctx, "/v1/orders", query, &p)
	return p, err
}

// FetchAllOrders drives the page-by-page fetch loop until the accumulated
// item count reaches the server-reported total. Items keep server order,
// concatenated page by page. onPage, if non-nil, is called after each page
// with the running count and the reported total. A single failed page aborts
// the whole fetch with ErrFetchPage; partial results are discarded.
func (c *Client) FetchAllOrders(ctx context.Context, onPage func(fetched, total int)) ([]orders.Order, error) {
	var all []orders.Order
	for page := 1; ; page++ {
		resp, err := c.ListOrders(ctx, page, PageSize)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrFetchPage, page, err)
		}
		all = append(all, resp.Items...)
		if onPage != nil {
			onPage(len(all), resp.Pagination.TotalCount)
		}
		if len(all) >= resp.Pagination.TotalCount {
			return all, nil
		}
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &APIError{Status: resp.StatusCode, Path: path}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
