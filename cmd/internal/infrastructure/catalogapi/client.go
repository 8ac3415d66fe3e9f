package catalogapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"bizindustry/cmd/internal/domain/entity"
)

const DefaultBaseURL = "https://businesses-industry-api-manus.onrender.com"

var (
	ErrNotFound = errors.New("not found")
)

// StatusError is returned for any non-2xx answer other than 404 on item lookups.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog api %s failed with status code: %d", e.Endpoint, e.StatusCode)
}

// Client talks to the remote industry catalog. It never retries: callers
// decide what a failure means for their page.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var health HealthStatus
	if err := c.get(ctx, "/api/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) ListIndustries(ctx context.Context, filters *ListFilters) ([]*entity.Company, error) {
	params := url.Values{}
	if filters != nil {
		setIfPresent(params, "sector", filters.Sector)
		setIfPresent(params, "country", filters.Country)
		setIfPresent(params, "status", filters.Status)
	}

	var body envelope[[]*companyResponse]
	if err := c.get(ctx, "/api/industries", params, &body); err != nil {
		return nil, err
	}
	return toCompanies(body.Data), nil
}

func (c *Client) GetIndustry(ctx context.Context, id string) (*entity.Company, error) {
	var body envelope[*companyResponse]
	err := c.get(ctx, "/api/industries/"+url.PathEscape(id), nil, &body)
	if err != nil {
		var serr *StatusError
		if errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if body.Data == nil {
		return nil, ErrNotFound
	}
	return body.Data.ToDomain(), nil
}

func (c *Client) SearchIndustries(ctx context.Context, query, sector, region string) ([]*entity.Company, error) {
	params := url.Values{}
	setIfPresent(params, "q", query)
	setIfPresent(params, "sector", sector)
	setIfPresent(params, "region", region)

	var body envelope[[]*companyResponse]
	if err := c.get(ctx, "/api/industries/search", params, &body); err != nil {
		return nil, err
	}
	return toCompanies(body.Data), nil
}

func (c *Client) ListSectors(ctx context.Context) ([]*entity.Sector, error) {
	var body envelope[[]*sectorResponse]
	if err := c.get(ctx, "/api/sectors", nil, &body); err != nil {
		return nil, err
	}
	return toSectors(body.Data), nil
}

func (c *Client) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	var body envelope[[]*countryResponse]
	if err := c.get(ctx, "/api/countries", nil, &body); err != nil {
		return nil, err
	}
	return toCountries(body.Data), nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog api %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Endpoint: path, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	err = json.Unmarshal(body, out)
	if err != nil {
		return fmt.Errorf("catalog api %s returned malformed body: %w", path, err)
	}
	return nil
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}
