package paystack

// Metadata is attached to a charge at initiation and read back at
// verification time. It is the only place the purchase context survives
// the round trip through the gateway.
type Metadata struct {
	UserID       string `json:"user_id"`
	Type         string `json:"type"`
	ListingID    string `json:"listing_id,omitempty"`
	DurationDays int    `json:"duration_days,omitempty"`
}

// MobileMoney identifies the mobile-money wallet to charge.
type MobileMoney struct {
	Phone    string `json:"phone"`
	Provider string `json:"provider"`
}

// ChargeRequest is the payload for a direct mobile-money charge (STK push).
// Amount is in minor currency units (cents).
type ChargeRequest struct {
	Email       string      `json:"email"`
	Amount      int64       `json:"amount"`
	Currency    string      `json:"currency"`
	MobileMoney MobileMoney `json:"mobile_money"`
	Metadata    Metadata    `json:"metadata"`
}

// ChargeData is the subset of the charge response we act on.
type ChargeData struct {
	Reference   string `json:"reference"`
	Status      string `json:"status"`
	DisplayText string `json:"display_text,omitempty"`
}

// InitializeRequest is the payload for a redirect-based checkout session,
// used when the caller has no phone number for a direct charge.
type InitializeRequest struct {
	Email       string   `json:"email"`
	Amount      int64    `json:"amount"`
	Currency    string   `json:"currency"`
	CallbackURL string   `json:"callback_url"`
	Metadata    Metadata `json:"metadata"`
}

// InitializeData is returned for a checkout session.
type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// TransactionData is the verification result for a reference.
// Status is "success" once the gateway has confirmed the payment.
type TransactionData struct {
	Reference string   `json:"reference"`
	Status    string   `json:"status"`
	Amount    int64    `json:"amount"`
	Currency  string   `json:"currency"`
	Channel   string   `json:"channel"`
	Metadata  Metadata `json:"metadata"`
}

// TransactionStatusSuccess is the only provider status treated as confirmed.
const TransactionStatusSuccess = "success"
