package dtos

// ----------------------
// Requests
// ----------------------

type CreateInquiryRequest struct {
	ListingID    string `json:"listing_id" validate:"required,uuid4"`
	Message      string `json:"message" validate:"required,min=1,max=2000"`
	ContactPhone string `json:"contact_phone,omitempty" validate:"omitempty"`
}

type ReplyRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}
