package services

import (
	"context"
	"testing"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type verificationFixture struct {
	svc         VerificationService
	docRepo     *fakeDocRepo
	userRepo    *fakeUserRepo
	paymentRepo *fakePaymentRepo
	landlord    *models.User
}

func newVerificationFixture(t *testing.T) *verificationFixture {
	t.Helper()
	f := &verificationFixture{
		docRepo:     newFakeDocRepo(),
		userRepo:    newFakeUserRepo(),
		paymentRepo: newFakePaymentRepo(),
	}
	f.svc = NewVerificationService(f.docRepo, f.userRepo, f.paymentRepo)
	f.landlord = &models.User{ID: uuid.New(), Email: "landlord@example.com", Role: models.RoleLandlord, IsActive: true}
	require.NoError(t, f.userRepo.Create(context.Background(), f.landlord))
	return f
}

func TestSubmitDocumentResubmissionResetsToPending(t *testing.T) {
	f := newVerificationFixture(t)
	ctx := context.Background()

	doc, err := f.svc.SubmitDocument(ctx, f.landlord.ID, "https://cdn.example.com/id-front.jpg")
	require.NoError(t, err)
	require.Equal(t, models.DocumentStatusPending, doc.Status)

	require.NoError(t, f.svc.Review(ctx, doc.ID, false, "Photo is blurry"))

	rejected, err := f.docRepo.GetByUser(ctx, f.landlord.ID)
	require.NoError(t, err)
	require.Equal(t, models.DocumentStatusRejected, rejected.Status)
	require.Equal(t, "Photo is blurry", rejected.RejectionReason)
	require.NotNil(t, rejected.ReviewedAt)

	resubmitted, err := f.svc.SubmitDocument(ctx, f.landlord.ID, "https://cdn.example.com/id-front-v2.jpg")
	require.NoError(t, err)
	require.Equal(t, models.DocumentStatusPending, resubmitted.Status)
	require.Empty(t, resubmitted.RejectionReason)
	require.Nil(t, resubmitted.ReviewedAt)
	require.Equal(t, "https://cdn.example.com/id-front-v2.jpg", resubmitted.DocumentURL)
}

func TestReviewApprovalVerifiesLandlord(t *testing.T) {
	f := newVerificationFixture(t)
	ctx := context.Background()

	doc, err := f.svc.SubmitDocument(ctx, f.landlord.ID, "https://cdn.example.com/id.jpg")
	require.NoError(t, err)

	require.NoError(t, f.svc.Review(ctx, doc.ID, true, ""))

	user, err := f.userRepo.GetByID(ctx, f.landlord.ID)
	require.NoError(t, err)
	require.True(t, user.IsVerified)
	require.NotNil(t, user.VerificationDate)

	queue, err := f.svc.PendingQueue(ctx)
	require.NoError(t, err)
	require.Empty(t, queue)
}

func TestReviewUnknownDocument(t *testing.T) {
	f := newVerificationFixture(t)
	require.ErrorIs(t, f.svc.Review(context.Background(), uuid.New(), true, ""), utils.ErrNoRowsUpdated)
}

func TestStatusReflectsFeeAndDocument(t *testing.T) {
	f := newVerificationFixture(t)
	ctx := context.Background()

	status, err := f.svc.Status(ctx, f.landlord.ID)
	require.NoError(t, err)
	require.False(t, status.IsVerified)
	require.False(t, status.FeePaid)
	require.Nil(t, status.Document)

	_, err = f.paymentRepo.Create(ctx, &models.Payment{
		ID:        uuid.New(),
		UserID:    f.landlord.ID,
		Type:      models.PaymentTypeVerification,
		Status:    models.PaymentStatusCompleted,
		Reference: "verif_fee_ref",
	})
	require.NoError(t, err)
	_, err = f.svc.SubmitDocument(ctx, f.landlord.ID, "https://cdn.example.com/id.jpg")
	require.NoError(t, err)

	status, err = f.svc.Status(ctx, f.landlord.ID)
	require.NoError(t, err)
	require.False(t, status.IsVerified) // fee alone is not verification
	require.True(t, status.FeePaid)
	require.NotNil(t, status.Document)
	require.Equal(t, models.DocumentStatusPending, status.Document.Status)
}
