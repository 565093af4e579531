package kravata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	apiKeyHeader = "x-api-key"

	// PaymentMethodPSE is the only payment method the marketplace issues:
	// Colombian bank-redirect checkout.
	PaymentMethodPSE = "PSE"
)

// Client talks to the Kravata compliance/liquidity REST API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Kravata client
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError is a non-2xx response from the provider
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kravata: status %d: %s", e.StatusCode, e.Body)
}

// OrderParty identifies one side of an order in provider terms
type OrderParty struct {
	ExternalID    string `json:"externalId"`
	WalletID      string `json:"walletId"`
	WalletAddress string `json:"walletAddress,omitempty"`
}

// CreateOrderRequest mirrors the provider's order-creation payload
type CreateOrderRequest struct {
	Amount        float64    `json:"amount"`
	TokenSymbol   string     `json:"token"`
	PaymentMethod string     `json:"paymentMethod"`
	Buyer         OrderParty `json:"buyer"`
	Seller        OrderParty `json:"seller"`
	Quantity      int64      `json:"quantity"`
	PricePerToken float64    `json:"pricePerToken"`
}

// CreateOrderResponse carries the remote transaction id
type CreateOrderResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status,omitempty"`
}

// Balance is a custody wallet balance entry
type Balance struct {
	Token     string  `json:"token"`
	Amount    float64 `json:"amount"`
	Available float64 `json:"available"`
}

// Transaction is one row of provider transaction history
type Transaction struct {
	TransactionID string    `json:"transactionId"`
	Type          string    `json:"type"`
	Token         string    `json:"token"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// KYCStatus is the provider's onboarding state for an external id
type KYCStatus struct {
	ExternalID string `json:"externalId"`
	Status     string `json:"status"`
}

// CreateOrder registers the purchase with the provider and returns the
// transaction id used for payment and settlement correlation.
func (c *Client) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	var resp CreateOrderResponse
	if err := c.post(ctx, "/api/v1/order", req, &resp); err != nil {
		return nil, err
	}
	if resp.TransactionID == "" {
		return nil, fmt.Errorf("kravata: order response missing transactionId")
	}
	return &resp, nil
}

// GetPSEURL obtains the bank-redirect payment URL for a transaction
func (c *Client) GetPSEURL(ctx context.Context, transactionID, bankName, bankCode string) (string, error) {
	q := url.Values{}
	q.Set("transactionId", transactionID)
	if bankName != "" {
		q.Set("bankName", bankName)
	}
	if bankCode != "" {
		q.Set("bankCode", bankCode)
	}

	var resp struct {
		PSEURL string `json:"pseURL"`
	}
	if err := c.get(ctx, "/api/v1/order/pse?"+q.Encode(), &resp); err != nil {
		return "", err
	}
	if resp.PSEURL == "" {
		return "", fmt.Errorf("kravata: pse response missing redirect url")
	}
	return resp.PSEURL, nil
}

// GetBalance fetches custody balances for an external id
func (c *Client) GetBalance(ctx context.Context, externalID string) ([]Balance, error) {
	var resp struct {
		Balances []Balance `json:"balances"`
	}
	if err := c.get(ctx, "/api/v1/wallet/balance?externalId="+url.QueryEscape(externalID), &resp); err != nil {
		return nil, err
	}
	return resp.Balances, nil
}

// ListTransactions fetches transaction history for an external id
func (c *Client) ListTransactions(ctx context.Context, externalID string) ([]Transaction, error) {
	var resp struct {
		Transactions []Transaction `json:"transactions"`
	}
	if err := c.get(ctx, "/api/v1/wallet/transactions?externalId="+url.QueryEscape(externalID), &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

// GetKYCStatus fetches the onboarding state for an external id
func (c *Client) GetKYCStatus(ctx context.Context, externalID string) (*KYCStatus, error) {
	var resp KYCStatus
	if err := c.get(ctx, "/api/v1/compliance/status?externalId="+url.QueryEscape(externalID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("kravata: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("kravata: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("kravata: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("kravata: decode response: %w", err)
		}
	}
	return nil
}
