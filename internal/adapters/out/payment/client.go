// Package payment implements the payment service port against the external
// payment gateway's HTTP API.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"logitrack/internal/core/ports"
)

const requestTimeout = 5 * time.Second

// Client calls the payment gateway over HTTP. Authorization is synchronous;
// the caller only proceeds on a successful charge.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// chargeRequest is the gateway's charge payload.
type chargeRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

// chargeResponse is the gateway's charge result.
type chargeResponse struct {
	PaymentID string `json:"payment_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewClient creates a payment gateway client.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger.With("component", "payment-client"),
	}
}

// Authorize charges the delivery fee and returns the gateway's payment id.
// A decline maps to ports.ErrPaymentFailed; transport and server errors are
// returned as-is so the caller can distinguish "rejected" from "unreachable".
func (c *Client) Authorize(ctx context.Context, amount float64, method string) (string, error) {
	reqBody, err := json.Marshal(chargeRequest{Amount: amount, Method: method})
	if err != nil {
		return "", fmt.Errorf("marshal charge request: %w", err)
	}

	url := c.baseURL + "/api/v1/charges"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("create charge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read charge response: %w", err)
	}

	if resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusUnprocessableEntity {
		c.logger.Warn("payment declined", "status_code", resp.StatusCode, "method", method)
		return "", fmt.Errorf("%w: gateway declined the charge", ports.ErrPaymentFailed)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("payment gateway error: %d", resp.StatusCode)
	}

	var charge chargeResponse
	if err = json.Unmarshal(body, &charge); err != nil {
		return "", fmt.Errorf("parse charge response: %w", err)
	}

	if charge.Error != "" || charge.Status == "declined" {
		c.logger.Warn("payment declined", "reason", charge.Error, "method", method)
		return "", fmt.Errorf("%w: %s", ports.ErrPaymentFailed, charge.Error)
	}
	if charge.PaymentID == "" {
		return "", fmt.Errorf("payment gateway returned no payment id")
	}

	return charge.PaymentID, nil
}
