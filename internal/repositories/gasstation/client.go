package gasstation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrBadStatus    = errors.New("gas station returned non-200 status")
	ErrEmptyFeeData = errors.New("gas station returned empty fee data")
)

// Fee values are in gwei
type Fee struct {
	MaxFee         float64 `json:"maxFee"`
	MaxPriorityFee float64 `json:"maxPriorityFee"`
}

type Response struct {
	SafeLow          Fee     `json:"safeLow"`
	Standard         Fee     `json:"standard"`
	Fast             Fee     `json:"fast"`
	EstimatedBaseFee float64 `json:"estimatedBaseFee"`
	BlockTime        int64   `json:"blockTime"`
	BlockNumber      int64   `json:"blockNumber"`
}

// Client queries a Polygon style gas station (https://gasstation.polygon.technology/v2)
type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{url: strings.TrimRight(url, "/"), client: httpClient}
}

func (c *Client) Get(ctx context.Context) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: %d %s", ErrBadStatus, resp.StatusCode, string(b))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StandardFee returns the "standard" tier, which is what the dashboard prices transactions with
func (c *Client) StandardFee(ctx context.Context) (maxFee float64, maxPriorityFee float64, err error) {
	res, err := c.Get(ctx)
	if err != nil {
		return 0, 0, err
	}
	if res.Standard.MaxFee <= 0 {
		return 0, 0, ErrEmptyFeeData
	}
	return res.Standard.MaxFee, res.Standard.MaxPriorityFee, nil
}
