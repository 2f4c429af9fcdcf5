package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("sk_test_secret", srv.URL)
	require.NoError(t, err)
	return client
}

func TestChargeSendsAuthAndParsesData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/charge", r.URL.Path)
		require.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))

		var req ChargeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "254712345678", req.MobileMoney.Phone)
		require.Equal(t, "mpesa", req.MobileMoney.Provider)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Charge attempted",
			"data": map[string]any{
				"reference":    "ref_abc123",
				"status":       "pay_offline",
				"display_text": "Enter your PIN on your phone",
			},
		})
	})

	data, err := client.Charge(context.Background(), ChargeRequest{
		Email:    "hunter@example.com",
		Amount:   99900,
		Currency: "KES",
		MobileMoney: MobileMoney{
			Phone:    "254712345678",
			Provider: "mpesa",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "ref_abc123", data.Reference)
	require.Equal(t, "pay_offline", data.Status)
	require.Equal(t, "Enter your PIN on your phone", data.DisplayText)
}

func TestVerifyTransaction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "GET", r.Method)
		require.Equal(t, "/transaction/verify/ref_abc123", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]any{
				"reference": "ref_abc123",
				"status":    "success",
				"amount":    99900,
				"currency":  "KES",
				"channel":   "mobile_money",
				"metadata": map[string]any{
					"user_id": "5bb6b428-61b3-47d4-bbd7-b364fae2f679",
					"type":    "verification",
				},
			},
		})
	})

	data, err := client.VerifyTransaction(context.Background(), "ref_abc123")
	require.NoError(t, err)
	require.Equal(t, TransactionStatusSuccess, data.Status)
	require.Equal(t, int64(99900), data.Amount)
	require.Equal(t, "mobile_money", data.Channel)
	require.Equal(t, "verification", data.Metadata.Type)
}

func TestDeclinedEnvelopeReturnsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  false,
			"message": "Invalid amount",
		})
	})

	_, err := client.Charge(context.Background(), ChargeRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Invalid amount", apiErr.Message)
}

func TestFalseStatusWithHTTP200IsStillAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  false,
			"message": "Charge declined",
		})
	})

	_, err := client.VerifyTransaction(context.Background(), "ref_declined")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "Charge declined", apiErr.Message)
}
