package paystack

import (
	"context"
	"fmt"
)

// InitializeTransaction creates a redirect-based checkout session and
// returns the authorization URL the client should be sent to.
func (c *Client) InitializeTransaction(ctx context.Context, req InitializeRequest) (*InitializeData, error) {
	var data InitializeData
	if err := c.doRequest(ctx, "POST", "transaction/initialize", req, &data); err != nil {
		return nil, fmt.Errorf("InitializeTransaction error: %w", err)
	}
	return &data, nil
}

// VerifyTransaction fetches the current state of a transaction by its
// reference. A nil error only means the lookup succeeded; callers must
// still check TransactionData.Status.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*TransactionData, error) {
	endpoint := fmt.Sprintf("transaction/verify/%s", reference)
	var data TransactionData
	if err := c.doRequest(ctx, "GET", endpoint, nil, &data); err != nil {
		return nil, fmt.Errorf("VerifyTransaction error: %w", err)
	}
	return &data, nil
}
