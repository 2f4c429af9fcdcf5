package paystack

import (
	"context"
	"fmt"
)

// Charge issues a direct mobile-money charge (STK push on the customer's
// phone). The returned reference is what callers later verify.
func (c *Client) Charge(ctx context.Context, req ChargeRequest) (*ChargeData, error) {
	var data ChargeData
	if err := c.doRequest(ctx, "POST", "charge", req, &data); err != nil {
		return nil, fmt.Errorf("Charge error: %w", err)
	}
	return &data, nil
}
