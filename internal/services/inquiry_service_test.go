package services

import (
	"context"
	"testing"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type inquiryFixture struct {
	svc         InquiryService
	listingRepo *fakeListingRepo
	messageRepo *fakeMessageRepo
	ownerID     uuid.UUID
	hunterID    uuid.UUID
	listing     *models.Listing
}

func newInquiryFixture(t *testing.T) *inquiryFixture {
	t.Helper()
	listingRepo := newFakeListingRepo()
	inquiryRepo := newFakeInquiryRepo(listingRepo)
	messageRepo := newFakeMessageRepo()

	f := &inquiryFixture{
		svc:         NewInquiryService(inquiryRepo, messageRepo, listingRepo),
		listingRepo: listingRepo,
		messageRepo: messageRepo,
		ownerID:     uuid.New(),
		hunterID:    uuid.New(),
	}
	f.listing = &models.Listing{ID: uuid.New(), OwnerID: f.ownerID, Title: "1BR Roysambu", Slug: "1br-roysambu"}
	require.NoError(t, listingRepo.Create(context.Background(), f.listing))
	return f
}

func TestCreateInquirySeedsThread(t *testing.T) {
	f := newInquiryFixture(t)
	ctx := context.Background()

	inq, err := f.svc.Create(ctx, f.hunterID, f.listing.ID, "Is this still available?", "0712 345 678")
	require.NoError(t, err)
	require.Equal(t, "254712345678", inq.ContactPhone)

	msgs, err := f.messageRepo.ListByInquiry(ctx, inq.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "Is this still available?", msgs[0].Content)
	require.Equal(t, f.hunterID, msgs[0].SenderID)
}

func TestCreateInquiryUnknownListing(t *testing.T) {
	f := newInquiryFixture(t)

	_, err := f.svc.Create(context.Background(), f.hunterID, uuid.New(), "Hello?", "")
	require.ErrorIs(t, err, utils.ErrNoRowsUpdated)
}

func TestCreateInquiryBadPhone(t *testing.T) {
	f := newInquiryFixture(t)

	_, err := f.svc.Create(context.Background(), f.hunterID, f.listing.ID, "Hello", "not-a-phone")
	require.ErrorIs(t, err, utils.ErrInvalidPhone)
}

func TestReplyParticipantsOnly(t *testing.T) {
	f := newInquiryFixture(t)
	ctx := context.Background()

	inq, err := f.svc.Create(ctx, f.hunterID, f.listing.ID, "Viewing this weekend?", "")
	require.NoError(t, err)

	// listing owner can answer
	msg, err := f.svc.Reply(ctx, f.ownerID, inq.ID, "Yes, Saturday works.")
	require.NoError(t, err)
	require.Equal(t, f.ownerID, msg.SenderID)

	// the hunter can follow up
	_, err = f.svc.Reply(ctx, f.hunterID, inq.ID, "Great, see you then.")
	require.NoError(t, err)

	// anyone else is shut out
	_, err = f.svc.Reply(ctx, uuid.New(), inq.ID, "Me too please")
	require.ErrorIs(t, err, utils.ErrNotParticipant)

	msgs, err := f.messageRepo.ListByInquiry(ctx, inq.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
}

func TestThreadUnreadAndMarkRead(t *testing.T) {
	f := newInquiryFixture(t)
	ctx := context.Background()

	inq, err := f.svc.Create(ctx, f.hunterID, f.listing.ID, "Any parking?", "")
	require.NoError(t, err)
	_, err = f.svc.Reply(ctx, f.ownerID, inq.ID, "Two slots per unit.")
	require.NoError(t, err)

	thread, err := f.svc.Thread(ctx, f.hunterID, inq.ID)
	require.NoError(t, err)
	require.Len(t, thread.Messages, 2)
	require.Equal(t, int64(1), thread.Unread)
	require.Equal(t, f.listing.ID, thread.Listing.ID)

	require.NoError(t, f.svc.MarkRead(ctx, f.hunterID, inq.ID))

	thread, err = f.svc.Thread(ctx, f.hunterID, inq.ID)
	require.NoError(t, err)
	require.Zero(t, thread.Unread)
}

func TestThreadRejectsOutsider(t *testing.T) {
	f := newInquiryFixture(t)
	ctx := context.Background()

	inq, err := f.svc.Create(ctx, f.hunterID, f.listing.ID, "Water situation?", "")
	require.NoError(t, err)

	_, err = f.svc.Thread(ctx, uuid.New(), inq.ID)
	require.ErrorIs(t, err, utils.ErrNotParticipant)

	require.ErrorIs(t, f.svc.MarkRead(ctx, uuid.New(), inq.ID), utils.ErrNotParticipant)
}

func TestListForUserCoversBothSides(t *testing.T) {
	f := newInquiryFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.hunterID, f.listing.ID, "Still open?", "")
	require.NoError(t, err)

	mine, err := f.svc.ListForUser(ctx, f.hunterID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	received, err := f.svc.ListForUser(ctx, f.ownerID)
	require.NoError(t, err)
	require.Len(t, received, 1)

	none, err := f.svc.ListForUser(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, none)
}
