package routes

const (
	// Health
	Health = "/health"

	// Auth
	AuthRegister             = "/api/v1/auth/register"
	AuthLogin                = "/api/v1/auth/login"
	AuthRefresh              = "/api/v1/auth/refresh"
	AuthLogout               = "/api/v1/auth/logout"
	AuthChangePassword       = "/api/v1/auth/change-password"
	AuthPasswordReset        = "/api/v1/auth/password-reset"
	AuthPasswordResetCheck   = "/api/v1/auth/password-reset/validate"
	AuthPasswordResetConfirm = "/api/v1/auth/password-reset/confirm"

	// Profile
	UsersMe = "/api/v1/users/me"

	// Listings (public)
	Listings          = "/api/v1/listings"
	ListingsMap       = "/api/v1/listings/map"
	ListingByIDOrSlug = "/api/v1/listings/{idOrSlug}"
	ListingRecordView = "/api/v1/listings/{idOrSlug}/view"
	ListingImages     = "/api/v1/listings/{id}/images"

	// Listings (owner)
	ListingByID          = "/api/v1/listings/{id}"
	ListingTogglePublish = "/api/v1/listings/{id}/publish"
	ListingStats         = "/api/v1/listings/{id}/stats"
	ListingImageByID     = "/api/v1/listings/images/{imageID}"
	ListingImagePrimary  = "/api/v1/listings/images/{imageID}/primary"

	// Favorites
	Favorites    = "/api/v1/favorites"
	FavoriteByID = "/api/v1/favorites/{id}"

	// Inquiries
	Inquiries       = "/api/v1/inquiries"
	InquiryByID     = "/api/v1/inquiries/{id}"
	InquiryMessages = "/api/v1/inquiries/{id}/messages"
	InquiryMarkRead = "/api/v1/inquiries/{id}/read"

	// Payments
	PaymentsPromote       = "/api/v1/payments/promote/{id}"
	PaymentsVerification  = "/api/v1/payments/verification"
	PaymentsContactAccess = "/api/v1/payments/contact-access/{id}"
	PaymentsVerify        = "/api/v1/payments/verify"
	PaymentsMine          = "/api/v1/payments/mine"

	// Verification
	VerificationDocuments = "/api/v1/verification/documents"
	VerificationStatus    = "/api/v1/verification/status"

	// Admin
	AdminStats                  = "/api/v1/admin/stats"
	AdminActivity               = "/api/v1/admin/activity"
	AdminUsers                  = "/api/v1/admin/users"
	AdminUserByID               = "/api/v1/admin/users/{id}"
	AdminUserToggleActive       = "/api/v1/admin/users/{id}/toggle-active"
	AdminUserVerify             = "/api/v1/admin/users/{id}/verify"
	AdminListings               = "/api/v1/admin/listings"
	AdminListingByID            = "/api/v1/admin/listings/{id}"
	AdminListingTogglePublished = "/api/v1/admin/listings/{id}/toggle-published"
	AdminVerifications          = "/api/v1/admin/verifications"
	AdminVerificationReview     = "/api/v1/admin/verifications/{id}/review"
	AdminRevenue                = "/api/v1/admin/revenue"
)
