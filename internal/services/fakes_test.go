package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/Keyroamos/hunt/internal/repositories"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
)

// In-memory repository doubles backing the service tests.

type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[uuid.UUID]*models.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[uuid.UUID]*models.Listing)}
}

func (r *fakeListingRepo) Create(ctx context.Context, l *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *l
	cp.RowVersion = 1
	cp.CreatedAt = time.Now()
	r.listings[l.ID] = &cp
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeListingRepo) GetBySlug(ctx context.Context, slug string) (*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.listings {
		if l.Slug == slug {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeListingRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	l, err := r.GetBySlug(ctx, slug)
	return l != nil, err
}

func (r *fakeListingRepo) Search(ctx context.Context, f repositories.ListingFilter) ([]*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Listing
	for _, l := range r.listings {
		if f.OwnerID != nil && l.OwnerID != *f.OwnerID {
			continue
		}
		if f.PublishedOnly && !l.IsPublished {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *fakeListingRepo) Update(ctx context.Context, l *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[l.ID]; !ok {
		return utils.ErrNoRowsUpdated
	}
	cp := *l
	cp.RowVersion++
	r.listings[l.ID] = &cp
	return nil
}

func (r *fakeListingRepo) UpdateIfVersion(ctx context.Context, l *models.Listing, expected int64) (pgconn.CommandTag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.listings[l.ID]
	if !ok || stored.RowVersion != expected {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	cp := *l
	cp.RowVersion = expected + 1
	r.listings[l.ID] = &cp
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (r *fakeListingRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Listing) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.listings[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	cp := *stored
	if err := mutate(&cp); err != nil {
		return err
	}
	cp.RowVersion++
	r.listings[id] = &cp
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[id]; !ok {
		return utils.ErrNoRowsUpdated
	}
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return 0, utils.ErrNoRowsUpdated
	}
	l.Views++
	return l.Views, nil
}

func (r *fakeListingRepo) SetPromotion(ctx context.Context, id uuid.UUID, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	l.IsPromoted = true
	l.PromotedUntil = &until
	return nil
}

func (r *fakeListingRepo) ClearExpiredPromotions(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	now := time.Now()
	for _, l := range r.listings {
		if l.IsPromoted && l.PromotedUntil != nil && l.PromotedUntil.Before(now) {
			l.IsPromoted = false
			l.PromotedUntil = nil
			n++
		}
	}
	return n, nil
}

func (r *fakeListingRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.listings)), nil
}

func (r *fakeListingRepo) CountPublished(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, l := range r.listings {
		if l.IsPublished {
			n++
		}
	}
	return n, nil
}

func (r *fakeListingRepo) ListRecent(ctx context.Context, limit int) ([]*models.Listing, error) {
	return r.Search(ctx, repositories.ListingFilter{Limit: limit})
}

type fakeImageRepo struct {
	mu     sync.Mutex
	images map[uuid.UUID]*models.ListingImage
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: make(map[uuid.UUID]*models.ListingImage)}
}

func (r *fakeImageRepo) Create(ctx context.Context, img *models.ListingImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *img
	cp.CreatedAt = time.Now()
	r.images[img.ID] = &cp
	return nil
}

func (r *fakeImageRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ListingImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.images[id]
	if !ok {
		return nil, nil
	}
	cp := *img
	return &cp, nil
}

func (r *fakeImageRepo) ListByListing(ctx context.Context, listingID uuid.UUID) ([]*models.ListingImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.ListingImage
	for _, img := range r.images {
		if img.ListingID == listingID {
			cp := *img
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsPrimary != out[j].IsPrimary {
			return out[i].IsPrimary
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeImageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.images[id]; !ok {
		return utils.ErrNoRowsUpdated
	}
	delete(r.images, id)
	return nil
}

func (r *fakeImageRepo) ResetPrimary(ctx context.Context, listingID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, img := range r.images {
		if img.ListingID == listingID {
			img.IsPrimary = false
		}
	}
	return nil
}

func (r *fakeImageRepo) SetPrimary(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.images[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	img.IsPrimary = true
	return nil
}

func (r *fakeImageRepo) GetPrimaryOrAny(ctx context.Context, listingID uuid.UUID) (*models.ListingImage, error) {
	imgs, _ := r.ListByListing(ctx, listingID)
	if len(imgs) == 0 {
		return nil, nil
	}
	return imgs[0], nil
}

type fakeFavoriteRepo struct {
	mu        sync.Mutex
	favorites map[uuid.UUID]*models.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[uuid.UUID]*models.Favorite)}
}

func (r *fakeFavoriteRepo) Create(ctx context.Context, f *models.Favorite) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, fav := range r.favorites {
		if fav.UserID == f.UserID && fav.ListingID == f.ListingID {
			return false, nil
		}
	}
	cp := *f
	cp.CreatedAt = time.Now()
	r.favorites[f.ID] = &cp
	return true, nil
}

func (r *fakeFavoriteRepo) Delete(ctx context.Context, userID, listingID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, fav := range r.favorites {
		if fav.UserID == userID && fav.ListingID == listingID {
			delete(r.favorites, id)
			return nil
		}
	}
	return utils.ErrNoRowsUpdated
}

func (r *fakeFavoriteRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Favorite
	for _, fav := range r.favorites {
		if fav.UserID == userID {
			cp := *fav
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeFavoriteRepo) Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, fav := range r.favorites {
		if fav.UserID == userID && fav.ListingID == listingID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFavoriteRepo) CountByListing(ctx context.Context, listingID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, fav := range r.favorites {
		if fav.ListingID == listingID {
			n++
		}
	}
	return n, nil
}

type fakeInquiryRepo struct {
	mu        sync.Mutex
	inquiries map[uuid.UUID]*models.Inquiry
	listings  *fakeListingRepo
}

func newFakeInquiryRepo(listings *fakeListingRepo) *fakeInquiryRepo {
	return &fakeInquiryRepo{inquiries: make(map[uuid.UUID]*models.Inquiry), listings: listings}
}

func (r *fakeInquiryRepo) Create(ctx context.Context, inq *models.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *inq
	cp.CreatedAt = time.Now()
	r.inquiries[inq.ID] = &cp
	return nil
}

func (r *fakeInquiryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inq, ok := r.inquiries[id]
	if !ok {
		return nil, nil
	}
	cp := *inq
	return &cp, nil
}

func (r *fakeInquiryRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Inquiry
	for _, inq := range r.inquiries {
		owns := false
		if r.listings != nil {
			if l, _ := r.listings.GetByID(ctx, inq.ListingID); l != nil && l.OwnerID == userID {
				owns = true
			}
		}
		if inq.UserID == userID || owns {
			cp := *inq
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInquiryRepo) ListByListing(ctx context.Context, listingID uuid.UUID) ([]*models.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Inquiry
	for _, inq := range r.inquiries {
		if inq.ListingID == listingID {
			cp := *inq
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInquiryRepo) CountByListing(ctx context.Context, listingID uuid.UUID) (int64, error) {
	out, _ := r.ListByListing(ctx, listingID)
	return int64(len(out)), nil
}

func (r *fakeInquiryRepo) CountByListingSince(ctx context.Context, listingID uuid.UUID, since time.Time) (int64, error) {
	out, _ := r.ListByListing(ctx, listingID)
	var n int64
	for _, inq := range out {
		if inq.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages map[uuid.UUID]*models.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[uuid.UUID]*models.Message)}
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	cp.CreatedAt = time.Now()
	r.messages[m.ID] = &cp
	return nil
}

func (r *fakeMessageRepo) ListByInquiry(ctx context.Context, inquiryID uuid.UUID) ([]*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Message
	for _, m := range r.messages {
		if m.InquiryID == inquiryID {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMessageRepo) MarkReadExceptSender(ctx context.Context, inquiryID, readerID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, m := range r.messages {
		if m.InquiryID == inquiryID && m.SenderID != readerID && !m.IsRead {
			m.IsRead = true
			n++
		}
	}
	return n, nil
}

func (r *fakeMessageRepo) CountUnreadForUser(ctx context.Context, inquiryID, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, m := range r.messages {
		if m.InquiryID == inquiryID && m.SenderID != userID && !m.IsRead {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	cp.CreatedAt = time.Now()
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) ListRecent(ctx context.Context, limit int) ([]*models.User, error) {
	out, _ := r.List(ctx)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[u.ID]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	stored.FirstName = u.FirstName
	stored.LastName = u.LastName
	stored.PhoneNumber = u.PhoneNumber
	return nil
}

func (r *fakeUserRepo) SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	u.IsActive = active
	return nil
}

func (r *fakeUserRepo) SetVerified(ctx context.Context, id uuid.UUID, verifiedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	u.IsVerified = true
	u.VerificationDate = &verifiedAt
	return nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountByRole(ctx context.Context, role models.RoleType) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*models.Payment // keyed by reference
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (r *fakePaymentRepo) Create(ctx context.Context, p *models.Payment) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.payments[p.Reference]; exists {
		return false, nil
	}
	cp := *p
	cp.CreatedAt = time.Now()
	r.payments[p.Reference] = &cp
	return true, nil
}

func (r *fakePaymentRepo) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.payments[reference]
	return ok, nil
}

func (r *fakePaymentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) List(ctx context.Context) ([]*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Payment
	for _, p := range r.payments {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePaymentRepo) HasCompleted(ctx context.Context, userID uuid.UUID, t models.PaymentType, listingID *uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.UserID != userID || p.Type != t || p.Status != models.PaymentStatusCompleted {
			continue
		}
		if listingID != nil && (p.ListingID == nil || *p.ListingID != *listingID) {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (r *fakePaymentRepo) TotalCompleted(ctx context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, p := range r.payments {
		if p.Status == models.PaymentStatusCompleted {
			total += p.Amount
		}
	}
	return total, nil
}

func (r *fakePaymentRepo) TotalCompletedBetween(ctx context.Context, from, to time.Time) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, p := range r.payments {
		if p.Status == models.PaymentStatusCompleted && p.CreatedAt.After(from) && p.CreatedAt.Before(to) {
			total += p.Amount
		}
	}
	return total, nil
}

func (r *fakePaymentRepo) CountCompleted(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.payments {
		if p.Status == models.PaymentStatusCompleted {
			n++
		}
	}
	return n, nil
}

func (r *fakePaymentRepo) TotalsByType(ctx context.Context) ([]repositories.TypeTotal, error) {
	return nil, nil
}

func (r *fakePaymentRepo) DailyTotalsSince(ctx context.Context, since time.Time) ([]repositories.DailyTotal, error) {
	return nil, nil
}

func (r *fakePaymentRepo) ListRecentCompleted(ctx context.Context, limit int) ([]*models.Payment, error) {
	out, _ := r.List(ctx)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeResetRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.PasswordResetToken
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: make(map[string]*models.PasswordResetToken)}
}

func (r *fakeResetRepo) Create(ctx context.Context, t *models.PasswordResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	cp.CreatedAt = time.Now()
	r.tokens[t.Token] = &cp
	return nil
}

func (r *fakeResetRepo) GetByToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeResetRepo) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.ID == id {
			t.UsedAt = &usedAt
			return nil
		}
	}
	return utils.ErrNoRowsUpdated
}

func (r *fakeResetRepo) DeleteExpired(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for token, t := range r.tokens {
		if t.UsedAt != nil || time.Now().After(t.ExpiresAt) {
			delete(r.tokens, token)
			n++
		}
	}
	return n, nil
}

type fakeDocRepo struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*models.VerificationDocument // keyed by user
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{docs: make(map[uuid.UUID]*models.VerificationDocument)}
}

func (r *fakeDocRepo) Upsert(ctx context.Context, doc *models.VerificationDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *doc
	cp.Status = models.DocumentStatusPending
	cp.RejectionReason = ""
	cp.ReviewedAt = nil
	cp.SubmittedAt = time.Now()
	if prev, ok := r.docs[doc.UserID]; ok {
		cp.ID = prev.ID
	}
	r.docs[doc.UserID] = &cp
	return nil
}

func (r *fakeDocRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.VerificationDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doc := range r.docs {
		if doc.ID == id {
			cp := *doc
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeDocRepo) GetByUser(ctx context.Context, userID uuid.UUID) (*models.VerificationDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[userID]
	if !ok {
		return nil, nil
	}
	cp := *doc
	return &cp, nil
}

func (r *fakeDocRepo) ListByStatus(ctx context.Context, status models.DocumentStatusType) ([]*models.VerificationDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.VerificationDocument
	for _, doc := range r.docs {
		if doc.Status == status {
			cp := *doc
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeDocRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.DocumentStatusType, reason string, reviewedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doc := range r.docs {
		if doc.ID == id {
			doc.Status = status
			doc.RejectionReason = reason
			doc.ReviewedAt = &reviewedAt
			return nil
		}
	}
	return utils.ErrNoRowsUpdated
}

func (r *fakeDocRepo) CountPending(ctx context.Context) (int64, error) {
	out, _ := r.ListByStatus(ctx, models.DocumentStatusPending)
	return int64(len(out)), nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeTokenRepo) CreateRefreshToken(ctx context.Context, t *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	cp.CreatedAt = time.Now()
	r.tokens[t.Token] = &cp
	return nil
}

func (r *fakeTokenRepo) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTokenRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	t.Revoked = true
	return nil
}

func (r *fakeTokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for token, t := range r.tokens {
		if t.Revoked || t.IsExpired() {
			delete(r.tokens, token)
			n++
		}
	}
	return n, nil
}

// stubJWTService hands out canned tokens.
type stubJWTService struct{}

func (s *stubJWTService) GenerateAccessToken(ctx context.Context, user *models.User) (string, error) {
	return "access-" + user.ID.String(), nil
}

func (s *stubJWTService) GenerateRefreshToken(ctx context.Context, subjectID uuid.UUID) (*models.RefreshToken, error) {
	return &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    subjectID,
		Token:     "refresh-" + subjectID.String(),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (s *stubJWTService) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	return "access-rotated", "refresh-rotated", nil
}

func (s *stubJWTService) Logout(ctx context.Context, refreshTokenString string) error {
	return nil
}

// stubEmailService records sends instead of hitting SendGrid.
type stubEmailService struct {
	mu       sync.Mutex
	welcome  []string
	resets   []string
	payments []string
}

func (s *stubEmailService) SendWelcomeEmail(toEmail, firstName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.welcome = append(s.welcome, toEmail)
	return nil
}

func (s *stubEmailService) SendPasswordResetEmail(toEmail, firstName, resetURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resets = append(s.resets, resetURL)
	return nil
}

func (s *stubEmailService) SendPaymentConfirmationEmail(toEmail, firstName, description string, amount float64, reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, reference)
	return nil
}
