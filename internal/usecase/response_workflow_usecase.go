package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"time"

	"lifelink/internal/converter"
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"
	"lifelink/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrResponseNotFound         = errors.New("donation response not found")
	ErrAlreadyResponded         = errors.New("you have already responded to this request")
	ErrRequestNotActive         = errors.New("request is no longer active")
	ErrInvalidTransition        = errors.New("response status does not allow this transition")
	ErrInvalidConfirmationToken = errors.New("invalid or missing confirmation token")
	ErrRecordAlreadyExists      = errors.New("a donation record for this response already exists")
	ErrInvalidCommitment        = errors.New("invalid commitment status")
)

// RequestLifecycle is the only path allowed to mark a request fulfilled.
// Implemented by RequestUsecase.
type RequestLifecycle interface {
	Fulfill(ctx context.Context, requestID uuid.UUID) error
}

type ResponseWorkflowUsecase interface {
	// SubmitResponse records a donor's commitment to a request. A committed
	// response receives a 4-digit confirmation token the donor presents at
	// the hospital.
	SubmitResponse(ctx context.Context, donorID, requestID uuid.UUID, commitment entity.ResponseStatus) (*dto.SubmitResponseResult, error)
	// MarkInProgress is the hospital-side transition after an appointment is
	// agreed. Idempotent when the response is already in progress.
	MarkInProgress(ctx context.Context, responseID uuid.UUID) error
	// ConfirmDonation validates the confirmation token, writes the immutable
	// donation record, completes the response and fulfills the request.
	ConfirmDonation(ctx context.Context, responseID, hospitalID uuid.UUID, req *dto.ConfirmDonationRequest) error
	GetResponsesForRequest(ctx context.Context, requestID uuid.UUID) (*dto.ResponseListResponse, error)
}

type responseWorkflowUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	requestRepo      repository.RequestRepository
	responseRepo     repository.ResponseRepository
	recordRepo       repository.DonationRecordRepository
	userRepo         repository.UserRepository
	requestLifecycle RequestLifecycle
	notifier         *service.NotifierService
}

func NewResponseWorkflowUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	requestRepo repository.RequestRepository,
	responseRepo repository.ResponseRepository,
	recordRepo repository.DonationRecordRepository,
	userRepo repository.UserRepository,
	requestLifecycle RequestLifecycle,
	notifier *service.NotifierService,
) ResponseWorkflowUsecase {
	return &responseWorkflowUsecase{
		db:               db,
		log:              log,
		requestRepo:      requestRepo,
		responseRepo:     responseRepo,
		recordRepo:       recordRepo,
		userRepo:         userRepo,
		requestLifecycle: requestLifecycle,
		notifier:         notifier,
	}
}

func (u *responseWorkflowUsecase) SubmitResponse(ctx context.Context, donorID, requestID uuid.UUID, commitment entity.ResponseStatus) (*dto.SubmitResponseResult, error) {
	if commitment != entity.ResponseStatusCommitted && commitment != entity.ResponseStatusDeclined {
		return nil, ErrInvalidCommitment
	}

	request, err := u.requestRepo.FindByID(u.db.WithContext(ctx), requestID)
	if err != nil {
		u.log.Warnf("Failed to find request %s: %+v", requestID, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}
	if !request.IsActive() {
		return nil, ErrRequestNotActive
	}

	// Existence check before insert; the unique index on
	// (request_id, donor_id) backstops concurrent submissions.
	existing, err := u.responseRepo.FindByRequestAndDonor(u.db.WithContext(ctx), requestID, donorID)
	if err != nil {
		u.log.Warnf("Failed to check existing response for request %s: %+v", requestID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyResponded
	}

	response := &entity.DonationResponse{
		RequestID:   requestID,
		DonorID:     donorID,
		Status:      commitment,
		RespondedAt: time.Now().UTC(),
	}

	if commitment == entity.ResponseStatusCommitted {
		token, err := generateConfirmationToken()
		if err != nil {
			u.log.Errorf("Failed to generate confirmation token: %+v", err)
			return nil, err
		}
		response.ConfirmationToken = &token
	}

	if err := u.responseRepo.Create(u.db.WithContext(ctx), response); err != nil {
		if isDuplicateKeyError(err, "idx_responses_request_donor") {
			return nil, ErrAlreadyResponded
		}
		u.log.Warnf("Failed to create response for request %s: %+v", requestID, err)
		return nil, err
	}

	u.notifier.NotifyHospitalOfResponse(ctx, response)

	u.log.Infof("Response submitted: id=%s, request=%s, status=%s", response.ID, requestID, commitment)

	return &dto.SubmitResponseResult{
		ResponseID:        response.ID,
		Status:            string(response.Status),
		ConfirmationToken: response.ConfirmationToken,
		RespondedAt:       response.RespondedAt,
	}, nil
}

func (u *responseWorkflowUsecase) MarkInProgress(ctx context.Context, responseID uuid.UUID) error {
	// Compare-and-set: only a committed response may move to in progress
	affected, err := u.responseRepo.TransitionStatus(
		u.db.WithContext(ctx),
		responseID,
		entity.ResponseStatusCommitted,
		entity.ResponseStatusInProgress,
	)
	if err != nil {
		u.log.Warnf("Failed to transition response %s: %+v", responseID, err)
		return err
	}
	if affected == 1 {
		u.log.Infof("Response %s moved to in progress", responseID)
		return nil
	}

	// Nothing matched: missing, already in progress, or a state with no
	// defined transition back to in progress.
	response, err := u.responseRepo.FindByID(u.db.WithContext(ctx), responseID)
	if err != nil {
		u.log.Warnf("Failed to find response %s: %+v", responseID, err)
		return err
	}
	if response == nil {
		return ErrResponseNotFound
	}
	if response.IsInProgress() {
		// Idempotent repeat of the same hospital action
		return nil
	}
	return ErrInvalidTransition
}

func (u *responseWorkflowUsecase) ConfirmDonation(ctx context.Context, responseID, hospitalID uuid.UUID, req *dto.ConfirmDonationRequest) error {
	response, err := u.responseRepo.FindByID(u.db.WithContext(ctx), responseID)
	if err != nil {
		u.log.Warnf("Failed to find response %s: %+v", responseID, err)
		return err
	}
	if response == nil {
		return ErrResponseNotFound
	}

	if !response.TokenMatches(req.ConfirmationToken) {
		return ErrInvalidConfirmationToken
	}

	// Idempotency guard: one record per response
	existing, err := u.recordRepo.FindByResponseID(u.db.WithContext(ctx), responseID)
	if err != nil {
		u.log.Warnf("Failed to check existing record for response %s: %+v", responseID, err)
		return err
	}
	if existing != nil {
		return ErrRecordAlreadyExists
	}

	donationDate, err := time.Parse("2006-01-02", req.DonationDate)
	if err != nil {
		return ErrInvalidDateFormat
	}

	hospital, err := u.userRepo.FindByID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", hospitalID, err)
		return err
	}
	if hospital == nil {
		return ErrUserNotFound
	}

	recipientInfo := req.RecipientInfo
	if recipientInfo == "" {
		recipientInfo = "Patient Matched"
	}

	record := &entity.DonationRecord{
		DonorID:            response.DonorID,
		HospitalID:         hospital.ID,
		HospitalName:       hospital.FullName,
		DonationDate:       donationDate,
		RecipientInfo:      recipientInfo,
		Status:             entity.RecordStatusCompleted,
		OriginalResponseID: responseID,
	}

	if err := u.recordRepo.Create(u.db.WithContext(ctx), record); err != nil {
		if isDuplicateKeyError(err, "original_response_id") {
			return ErrRecordAlreadyExists
		}
		u.log.Warnf("Failed to create donation record for response %s: %+v", responseID, err)
		return err
	}

	if err := u.responseRepo.SetStatus(u.db.WithContext(ctx), responseID, entity.ResponseStatusCompleted); err != nil {
		u.log.Errorf("Record %s created but response %s not completed: %+v", record.ID, responseID, err)
		return err
	}

	if err := u.requestLifecycle.Fulfill(ctx, response.RequestID); err != nil {
		u.log.Errorf("Response %s completed but request %s not fulfilled: %+v", responseID, response.RequestID, err)
		return err
	}

	u.log.Infof("Donation confirmed: response=%s, record=%s, request=%s", responseID, record.ID, response.RequestID)
	return nil
}

func (u *responseWorkflowUsecase) GetResponsesForRequest(ctx context.Context, requestID uuid.UUID) (*dto.ResponseListResponse, error) {
	request, err := u.requestRepo.FindByID(u.db.WithContext(ctx), requestID)
	if err != nil {
		u.log.Warnf("Failed to find request %s: %+v", requestID, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	responses, err := u.responseRepo.FindByRequestID(u.db.WithContext(ctx), requestID)
	if err != nil {
		u.log.Warnf("Failed to list responses for request %s: %+v", requestID, err)
		return nil, err
	}

	return &dto.ResponseListResponse{
		Responses: converter.ResponsesToResponses(responses),
		Total:     len(responses),
	}, nil
}

// generateConfirmationToken draws a uniform 4-digit token in [1000,9999].
// Tokens are not globally unique; validation is always scoped to a single
// response id, so a cross-response collision is harmless.
func generateConfirmationToken() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+1000, 10), nil
}
