package services

import (
	"context"
	"time"

	"github.com/Keyroamos/hunt/internal/constants"
	"github.com/Keyroamos/hunt/internal/models"
	"github.com/Keyroamos/hunt/internal/repositories"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/google/uuid"
)

// DashboardStats is the headline numbers block of the admin dashboard.
type DashboardStats struct {
	TotalUsers           int64   `json:"total_users"`
	Hunters              int64   `json:"hunters"`
	Landlords            int64   `json:"landlords"`
	TotalListings        int64   `json:"total_listings"`
	PublishedListings    int64   `json:"published_listings"`
	PendingVerifications int64   `json:"pending_verifications"`
	TotalRevenue         float64 `json:"total_revenue"`
	CompletedPayments    int64   `json:"completed_payments"`
}

// RecentActivity is the dashboard's "latest things that happened" block.
type RecentActivity struct {
	Users    []*models.User    `json:"users"`
	Listings []*models.Listing `json:"listings"`
	Payments []*models.Payment `json:"payments"`
}

// RevenueReport breaks completed revenue down for the finance view.
type RevenueReport struct {
	Total      float64                   `json:"total"`
	Last30Days float64                   `json:"last_30_days"`
	ByType     []repositories.TypeTotal  `json:"by_type"`
	Daily      []repositories.DailyTotal `json:"daily"`
	Recent     []*models.Payment         `json:"recent"`
}

// UserDetails is the admin view of one account.
type UserDetails struct {
	User     *models.User                 `json:"user"`
	Listings []*models.Listing            `json:"listings"`
	Payments []*models.Payment            `json:"payments"`
	Document *models.VerificationDocument `json:"verification_document,omitempty"`
}

type AdminService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	RecentActivity(ctx context.Context) (*RecentActivity, error)

	AllUsers(ctx context.Context) ([]*models.User, error)
	UserDetails(ctx context.Context, userID uuid.UUID) (*UserDetails, error)
	ToggleUserActive(ctx context.Context, userID uuid.UUID) (*models.User, error)
	VerifyUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	CreateStaffUser(ctx context.Context, in RegisterInput) (*models.User, error)

	AllListings(ctx context.Context) ([]*models.Listing, error)
	ToggleListingPublished(ctx context.Context, listingID uuid.UUID) (*models.Listing, error)
	DeleteListing(ctx context.Context, listingID uuid.UUID) error

	Revenue(ctx context.Context) (*RevenueReport, error)
}

type adminService struct {
	userRepo    repositories.UserRepository
	listingRepo repositories.ListingRepository
	paymentRepo repositories.PaymentRepository
	docRepo     repositories.VerificationDocumentRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	listingRepo repositories.ListingRepository,
	paymentRepo repositories.PaymentRepository,
	docRepo repositories.VerificationDocumentRepository,
) AdminService {
	return &adminService{
		userRepo:    userRepo,
		listingRepo: listingRepo,
		paymentRepo: paymentRepo,
		docRepo:     docRepo,
	}
}

func (s *adminService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Hunters, err = s.userRepo.CountByRole(ctx, models.RoleHunter); err != nil {
		return nil, err
	}
	if stats.Landlords, err = s.userRepo.CountByRole(ctx, models.RoleLandlord); err != nil {
		return nil, err
	}
	if stats.TotalListings, err = s.listingRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PublishedListings, err = s.listingRepo.CountPublished(ctx); err != nil {
		return nil, err
	}
	if stats.PendingVerifications, err = s.docRepo.CountPending(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.paymentRepo.TotalCompleted(ctx); err != nil {
		return nil, err
	}
	if stats.CompletedPayments, err = s.paymentRepo.CountCompleted(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *adminService) RecentActivity(ctx context.Context) (*RecentActivity, error) {
	users, err := s.userRepo.ListRecent(ctx, constants.RecentActivityLimit)
	if err != nil {
		return nil, err
	}
	listings, err := s.listingRepo.ListRecent(ctx, constants.RecentActivityLimit)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListRecentCompleted(ctx, constants.RecentActivityLimit)
	if err != nil {
		return nil, err
	}
	return &RecentActivity{Users: users, Listings: listings, Payments: payments}, nil
}

func (s *adminService) AllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *adminService) UserDetails(ctx context.Context, userID uuid.UUID) (*UserDetails, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrNoRowsUpdated
	}

	listings, err := s.listingRepo.Search(ctx, repositories.ListingFilter{OwnerID: &userID})
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	doc, err := s.docRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserDetails{
		User:     user,
		Listings: listings,
		Payments: payments,
		Document: doc,
	}, nil
}

func (s *adminService) ToggleUserActive(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrNoRowsUpdated
	}
	if err := s.userRepo.SetActive(ctx, userID, !user.IsActive); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

// VerifyUser is the manual override: it marks a landlord verified without
// going through the document review flow.
func (s *adminService) VerifyUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if err := s.userRepo.SetVerified(ctx, userID, time.Now()); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

func (s *adminService) CreateStaffUser(ctx context.Context, in RegisterInput) (*models.User, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         models.RoleLandlord,
		IsStaff:      true,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, utils.ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

func (s *adminService) AllListings(ctx context.Context) ([]*models.Listing, error) {
	return s.listingRepo.Search(ctx, repositories.ListingFilter{})
}

func (s *adminService) ToggleListingPublished(ctx context.Context, listingID uuid.UUID) (*models.Listing, error) {
	err := s.listingRepo.UpdateWithRetry(ctx, listingID, func(l *models.Listing) error {
		l.IsPublished = !l.IsPublished
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.listingRepo.GetByID(ctx, listingID)
}

func (s *adminService) DeleteListing(ctx context.Context, listingID uuid.UUID) error {
	return s.listingRepo.Delete(ctx, listingID)
}

func (s *adminService) Revenue(ctx context.Context) (*RevenueReport, error) {
	total, err := s.paymentRepo.TotalCompleted(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	last30, err := s.paymentRepo.TotalCompletedBetween(ctx, now.AddDate(0, 0, -30), now)
	if err != nil {
		return nil, err
	}
	byType, err := s.paymentRepo.TotalsByType(ctx)
	if err != nil {
		return nil, err
	}
	daily, err := s.paymentRepo.DailyTotalsSince(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	recent, err := s.paymentRepo.ListRecentCompleted(ctx, constants.RecentActivityLimit)
	if err != nil {
		return nil, err
	}

	return &RevenueReport{
		Total:      total,
		Last30Days: last30,
		ByType:     byType,
		Daily:      daily,
		Recent:     recent,
	}, nil
}
