package usecase

import (
	"context"
	"strconv"
	"testing"

	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workflowFixture struct {
	usecase      ResponseWorkflowUsecase
	requestRepo  *fakeRequestRepo
	responseRepo *fakeResponseRepo
	recordRepo   *fakeRecordRepo
	userRepo     *fakeUserRepo
	lifecycle    *fakeLifecycle
	hospital     *entity.User
	request      *entity.BloodRequest
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	log := newTestLogger()
	f := &workflowFixture{
		requestRepo:  newFakeRequestRepo(),
		responseRepo: newFakeResponseRepo(),
		recordRepo:   newFakeRecordRepo(),
		userRepo:     newFakeUserRepo(),
		lifecycle:    &fakeLifecycle{},
	}

	f.hospital = f.userRepo.add(&entity.User{
		Email:    "hospital@example.com",
		FullName: "Korle Bu Teaching Hospital",
		RoleID:   entity.RoleIDHospital,
	})

	f.request = &entity.BloodRequest{
		HospitalID: f.hospital.ID,
		BloodType:  entity.BloodAPositive,
		Quantity:   2,
		Status:     entity.RequestStatusActive,
	}
	require.NoError(t, f.requestRepo.Create(nil, f.request))

	f.usecase = NewResponseWorkflowUsecase(
		newTestDB(),
		log,
		f.requestRepo,
		f.responseRepo,
		f.recordRepo,
		f.userRepo,
		f.lifecycle,
		service.NewNotifierService(log),
	)
	return f
}

func (f *workflowFixture) submitCommitted(t *testing.T, donorID uuid.UUID) *dto.SubmitResponseResult {
	t.Helper()
	result, err := f.usecase.SubmitResponse(context.Background(), donorID, f.request.ID, entity.ResponseStatusCommitted)
	require.NoError(t, err)
	return result
}

func TestSubmitResponseCommitted(t *testing.T) {
	f := newWorkflowFixture(t)
	donorID := uuid.New()

	result := f.submitCommitted(t, donorID)

	assert.Equal(t, string(entity.ResponseStatusCommitted), result.Status)
	require.NotNil(t, result.ConfirmationToken)

	token, err := strconv.Atoi(*result.ConfirmationToken)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, token, 1000)
	assert.LessOrEqual(t, token, 9999)
	assert.Len(t, *result.ConfirmationToken, 4)
}

func TestSubmitResponseDeclinedHasNoToken(t *testing.T) {
	f := newWorkflowFixture(t)

	result, err := f.usecase.SubmitResponse(context.Background(), uuid.New(), f.request.ID, entity.ResponseStatusDeclined)

	require.NoError(t, err)
	assert.Equal(t, string(entity.ResponseStatusDeclined), result.Status)
	assert.Nil(t, result.ConfirmationToken)
}

func TestSubmitResponseDuplicate(t *testing.T) {
	f := newWorkflowFixture(t)
	donorID := uuid.New()
	f.submitCommitted(t, donorID)

	_, err := f.usecase.SubmitResponse(context.Background(), donorID, f.request.ID, entity.ResponseStatusCommitted)

	assert.ErrorIs(t, err, ErrAlreadyResponded)
}

func TestSubmitResponseRequestNotFound(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.usecase.SubmitResponse(context.Background(), uuid.New(), uuid.New(), entity.ResponseStatusCommitted)

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestSubmitResponseFulfilledRequest(t *testing.T) {
	f := newWorkflowFixture(t)
	f.request.Status = entity.RequestStatusFulfilled
	require.NoError(t, f.requestRepo.Update(nil, f.request))

	_, err := f.usecase.SubmitResponse(context.Background(), uuid.New(), f.request.ID, entity.ResponseStatusCommitted)

	assert.ErrorIs(t, err, ErrRequestNotActive)
}

func TestSubmitResponseInvalidCommitment(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.usecase.SubmitResponse(context.Background(), uuid.New(), f.request.ID, entity.ResponseStatusCompleted)

	assert.ErrorIs(t, err, ErrInvalidCommitment)
}

func TestMarkInProgressFromCommitted(t *testing.T) {
	f := newWorkflowFixture(t)
	result := f.submitCommitted(t, uuid.New())

	err := f.usecase.MarkInProgress(context.Background(), result.ResponseID)

	require.NoError(t, err)
	stored, _ := f.responseRepo.FindByID(nil, result.ResponseID)
	assert.Equal(t, entity.ResponseStatusInProgress, stored.Status)
}

func TestMarkInProgressIdempotent(t *testing.T) {
	f := newWorkflowFixture(t)
	result := f.submitCommitted(t, uuid.New())
	require.NoError(t, f.usecase.MarkInProgress(context.Background(), result.ResponseID))

	// Repeating the same hospital action is a no-op, not an error
	err := f.usecase.MarkInProgress(context.Background(), result.ResponseID)

	require.NoError(t, err)
	stored, _ := f.responseRepo.FindByID(nil, result.ResponseID)
	assert.Equal(t, entity.ResponseStatusInProgress, stored.Status)
}

func TestMarkInProgressFromCompleted(t *testing.T) {
	f := newWorkflowFixture(t)
	result := f.submitCommitted(t, uuid.New())
	require.NoError(t, f.responseRepo.SetStatus(nil, result.ResponseID, entity.ResponseStatusCompleted))

	err := f.usecase.MarkInProgress(context.Background(), result.ResponseID)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMarkInProgressNotFound(t *testing.T) {
	f := newWorkflowFixture(t)

	err := f.usecase.MarkInProgress(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrResponseNotFound)
}

func TestConfirmDonation(t *testing.T) {
	f := newWorkflowFixture(t)
	donorID := uuid.New()
	result := f.submitCommitted(t, donorID)
	require.NoError(t, f.usecase.MarkInProgress(context.Background(), result.ResponseID))

	err := f.usecase.ConfirmDonation(context.Background(), result.ResponseID, f.hospital.ID, &dto.ConfirmDonationRequest{
		ConfirmationToken: *result.ConfirmationToken,
		DonationDate:      "2026-08-30",
		RecipientInfo:     "Accident victim, ward 4",
	})
	require.NoError(t, err)

	record, _ := f.recordRepo.FindByResponseID(nil, result.ResponseID)
	require.NotNil(t, record)
	assert.Equal(t, entity.RecordStatusCompleted, record.Status)
	assert.Equal(t, donorID, record.DonorID)
	assert.Equal(t, f.hospital.ID, record.HospitalID)
	assert.Equal(t, "Korle Bu Teaching Hospital", record.HospitalName)

	stored, _ := f.responseRepo.FindByID(nil, result.ResponseID)
	assert.Equal(t, entity.ResponseStatusCompleted, stored.Status)

	assert.Equal(t, []uuid.UUID{f.request.ID}, f.lifecycle.fulfilled)
}

func TestConfirmDonationWrongToken(t *testing.T) {
	f := newWorkflowFixture(t)
	result := f.submitCommitted(t, uuid.New())

	wrongToken := "0000"
	if *result.ConfirmationToken == wrongToken {
		wrongToken = "0001"
	}

	err := f.usecase.ConfirmDonation(context.Background(), result.ResponseID, f.hospital.ID, &dto.ConfirmDonationRequest{
		ConfirmationToken: wrongToken,
		DonationDate:      "2026-08-30",
	})
	assert.ErrorIs(t, err, ErrInvalidConfirmationToken)

	// Nothing may change on a failed confirmation
	record, _ := f.recordRepo.FindByResponseID(nil, result.ResponseID)
	assert.Nil(t, record)
	stored, _ := f.responseRepo.FindByID(nil, result.ResponseID)
	assert.Equal(t, entity.ResponseStatusCommitted, stored.Status)
	assert.Empty(t, f.lifecycle.fulfilled)
}

func TestConfirmDonationTwice(t *testing.T) {
	f := newWorkflowFixture(t)
	result := f.submitCommitted(t, uuid.New())
	req := &dto.ConfirmDonationRequest{
		ConfirmationToken: *result.ConfirmationToken,
		DonationDate:      "2026-08-30",
	}
	require.NoError(t, f.usecase.ConfirmDonation(context.Background(), result.ResponseID, f.hospital.ID, req))

	err := f.usecase.ConfirmDonation(context.Background(), result.ResponseID, f.hospital.ID, req)

	assert.ErrorIs(t, err, ErrRecordAlreadyExists)
	assert.Len(t, f.lifecycle.fulfilled, 1)
}

func TestConfirmDonationBadDate(t *testing.T) {
	f := newWorkflowFixture(t)
	result := f.submitCommitted(t, uuid.New())

	err := f.usecase.ConfirmDonation(context.Background(), result.ResponseID, f.hospital.ID, &dto.ConfirmDonationRequest{
		ConfirmationToken: *result.ConfirmationToken,
		DonationDate:      "30-08-2026",
	})

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestConfirmDonationResponseNotFound(t *testing.T) {
	f := newWorkflowFixture(t)

	err := f.usecase.ConfirmDonation(context.Background(), uuid.New(), f.hospital.ID, &dto.ConfirmDonationRequest{
		ConfirmationToken: "1234",
		DonationDate:      "2026-08-30",
	})

	assert.ErrorIs(t, err, ErrResponseNotFound)
}

func TestGenerateConfirmationTokenRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		token, err := generateConfirmationToken()
		require.NoError(t, err)

		n, err := strconv.Atoi(token)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}
