// Package talad provides a client for the Taladnat marketplace API and
// the embedded category data used by the listing flow.
package talad

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/go-resty/resty/v2"
)

const ApiBaseUrl = "https://api.taladnat.co.th"

// ClientOpts configures a Client. Zero values fall back to production
// defaults.
type ClientOpts struct {
	BaseURL string
	Auth    string
}

// Client talks to the marketplace HTTP API.
type Client struct {
	httpClient *resty.Client
	baseURL    string
	auth       string
}

func NewClient(opts ClientOpts) *Client {
	c := Client{baseURL: ApiBaseUrl}
	if opts.BaseURL != "" {
		c.baseURL = opts.BaseURL
	}
	if opts.Auth != "" {
		c.auth = opts.Auth
	}
	c.httpClient = resty.New().
		SetDebug(false).
		SetBaseURL(c.baseURL).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": "taladnat-bot/1.0",
		})

	return &c
}

func (c *Client) req(ctx context.Context, result any) *resty.Request {
	request := c.httpClient.
		NewRequest().
		SetContext(ctx)

	if c.auth != "" {
		request.SetHeader("Authorization", c.auth)
	}
	if result != nil {
		request.SetResult(result)
	}

	return request
}

type categoriesResponse struct {
	Categories []Category `json:"categories"`
}

// GetCategories fetches the live category tree. The embedded Categories
// list is the fallback when the API is unreachable.
func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	result := &categoriesResponse{}

	_, err := handleError(c.req(ctx, result).Get("/v1/categories"))
	if err != nil {
		return nil, err
	}

	return result.Categories, nil
}

// SearchParams filter a listing search.
type SearchParams struct {
	Query      string
	CategoryID int
	Limit      int
}

// SearchDoc is one listing in a search result.
type SearchDoc struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    int    `json:"price"`
	Province string `json:"province"`
}

// SearchResult is the response from the listing search API.
type SearchResult struct {
	Docs       []SearchDoc `json:"docs"`
	MatchCount int         `json:"match_count"`
}

// SearchListings runs a free-text listing search, used for price
// comparison when a seller asks what similar items go for.
func (c *Client) SearchListings(ctx context.Context, params SearchParams) (SearchResult, error) {
	result := &SearchResult{}

	req := c.req(ctx, result).SetQueryParam("q", params.Query)
	if params.CategoryID != 0 {
		req.SetQueryParam("category_id", strconv.Itoa(params.CategoryID))
	}
	if params.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(params.Limit))
	}

	_, err := handleError(req.Get("/v1/listings/search"))
	if err != nil {
		return SearchResult{}, err
	}

	return *result, nil
}

// MedianPrice returns the median asking price among the result docs,
// or 0 for an empty result.
func (r SearchResult) MedianPrice() int {
	if len(r.Docs) == 0 {
		return 0
	}

	prices := make([]int, len(r.Docs))
	for i, doc := range r.Docs {
		prices[i] = doc.Price
	}
	sort.Ints(prices)

	mid := len(prices) / 2
	if len(prices)%2 == 0 {
		return (prices[mid-1] + prices[mid]) / 2
	}
	return prices[mid]
}

// handleError is a generic error handler for failing responses (>399
// status code). Without this, failing responses would have nil error.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}
	return res, nil
}
