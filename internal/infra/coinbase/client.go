package coinbase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"relay_go/internal/domain"
	"relay_go/internal/infra"
)

// Coinbase API Constants
const (
	BaseURL   = "https://api.coinbase.com"
	orderPath = "/api/v3/brokerage/orders"
)

// Client is the Coinbase Advanced REST API client (Boundary Layer)
type Client struct {
	baseURL    string
	httpClient *http.Client
	signer     *Signer
	logger     *slog.Logger
}

// NewClient creates a new Coinbase API client.
func NewClient(cfg *infra.Config) *Client {
	baseURL := cfg.API.Coinbase.RestURL
	if baseURL == "" {
		baseURL = BaseURL
	}

	signer := NewSigner(
		cfg.API.Coinbase.AccessKey,
		cfg.API.Coinbase.SecretKey,
		cfg.API.Coinbase.Passphrase,
	)

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 30 * time.Second,
			},
		},
		signer: signer,
		logger: slog.Default().With("module", "coinbase_client"),
	}
}

// placeOrderRequest - internal struct for JSON marshaling.
// Mirrors the Advanced Trade order body: a market IOC order funded by a
// quote-currency (USD) amount.
type placeOrderRequest struct {
	ProductID          string             `json:"product_id"`
	Side               string             `json:"side"` // buy, sell
	OrderConfiguration orderConfiguration `json:"order_configuration"`
}

type orderConfiguration struct {
	MarketMarketIOC marketMarketIOC `json:"market_market_ioc"`
}

type marketMarketIOC struct {
	QuoteSize string `json:"quote_size"`
}

// PlaceMarketOrder submits a market IOC order to the exchange and returns
// the raw response for passthrough. Non-2xx replies are not treated as
// errors here; only signing and transport failures are.
func (c *Client) PlaceMarketOrder(ctx context.Context, order domain.OrderRequest) (*domain.ExchangeResponse, error) {
	reqBody := placeOrderRequest{
		ProductID: order.ProductID,
		Side:      strings.ToLower(order.Side),
		OrderConfiguration: orderConfiguration{
			MarketMarketIOC: marketMarketIOC{
				QuoteSize: order.Funds.String(),
			},
		},
	}

	jsonBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &domain.ExchangeError{Op: "sign", Err: err}
	}
	bodyStr := string(jsonBytes)

	headers, err := c.signer.GenerateHeaders(http.MethodPost, orderPath, bodyStr)
	if err != nil {
		return nil, &domain.ExchangeError{Op: "sign", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+orderPath, bytes.NewBufferString(bodyStr))
	if err != nil {
		return nil, &domain.ExchangeError{Op: "submit", Err: err}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.ExchangeError{Op: "submit", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ExchangeError{Op: "submit", Err: err}
	}

	if resp.StatusCode == http.StatusOK {
		c.logger.Info("Order placed",
			slog.String("product_id", order.ProductID),
			slog.String("side", reqBody.Side),
			slog.String("quote_size", order.Funds.String()),
		)
	} else {
		c.logger.Warn("Exchange refused order",
			slog.String("product_id", order.ProductID),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(respBody)),
		)
	}

	return &domain.ExchangeResponse{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}
