package dtos

// ----------------------
// Requests
// ----------------------

type SubmitDocumentRequest struct {
	DocumentURL string `json:"document_url" validate:"required,url"`
}

type ReviewDocumentRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason,omitempty" validate:"omitempty,max=500"`
}
