package usecase

import (
	"context"
	"errors"

	"lifelink/internal/converter"
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"
	"lifelink/internal/service"
	"lifelink/pkg/geo"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrHospitalUnlocated is returned when proximity matching is requested for
// a hospital without stored coordinates.
var ErrHospitalUnlocated = errors.New("hospital has no stored coordinates")

type RequestUsecase interface {
	CreateRequest(ctx context.Context, hospitalID uuid.UUID, req *dto.CreateRequestRequest) (*dto.RequestResponse, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*dto.RequestResponse, error)
	ListRequests(ctx context.Context, filter *entity.RequestFilter) (*dto.RequestListResponse, error)
	UpdateRequest(ctx context.Context, id uuid.UUID, req *dto.UpdateRequestRequest) (*dto.RequestResponse, error)
	// DeleteRequest removes a request and cascades to its responses.
	DeleteRequest(ctx context.Context, id uuid.UUID) error
	// Fulfill marks a request fulfilled. Reached through donation
	// confirmation; requests are never fulfilled by direct edits.
	Fulfill(ctx context.Context, requestID uuid.UUID) error
	// FindMatchesForRequest runs an on-demand match pass around the issuing
	// hospital. Donors who already responded are excluded.
	FindMatchesForRequest(ctx context.Context, id uuid.UUID, radiusKM float64) (*dto.MatchListResponse, error)
}

type requestUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	requestRepo     repository.RequestRepository
	responseRepo    repository.ResponseRepository
	userRepo        repository.UserRepository
	matcher         *service.MatcherService
	notifier        *service.NotifierService
	defaultRadiusKM float64
}

func NewRequestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	requestRepo repository.RequestRepository,
	responseRepo repository.ResponseRepository,
	userRepo repository.UserRepository,
	matcher *service.MatcherService,
	notifier *service.NotifierService,
	defaultRadiusKM float64,
) RequestUsecase {
	return &requestUsecase{
		db:              db,
		log:             log,
		requestRepo:     requestRepo,
		responseRepo:    responseRepo,
		userRepo:        userRepo,
		matcher:         matcher,
		notifier:        notifier,
		defaultRadiusKM: defaultRadiusKM,
	}
}

func (u *requestUsecase) CreateRequest(ctx context.Context, hospitalID uuid.UUID, req *dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	hospital, err := u.userRepo.FindByID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", hospitalID, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrUserNotFound
	}

	request := &entity.BloodRequest{
		HospitalID:       hospitalID,
		BloodType:        entity.NormalizeBloodType(req.BloodType),
		Quantity:         req.Quantity,
		PatientCondition: req.PatientCondition,
		Status:           entity.RequestStatusActive,
	}

	if err := u.requestRepo.Create(u.db.WithContext(ctx), request); err != nil {
		u.log.Warnf("Failed to create blood request: %+v", err)
		return nil, err
	}

	u.log.Infof("Blood request created: id=%s, hospital=%s, blood_type=%s", request.ID, hospitalID, request.BloodType)

	// Immediate match pass. Failures here never fail the creation; the
	// request stays visible for manual matching.
	u.notifyNearbyDonors(ctx, request, hospital)

	return converter.RequestToResponse(request), nil
}

func (u *requestUsecase) notifyNearbyDonors(ctx context.Context, request *entity.BloodRequest, hospital *entity.User) {
	if !hospital.HasCoordinates() {
		u.log.Warnf("Hospital %s has no coordinates, skipping match pass for request %s", hospital.ID, request.ID)
		return
	}

	origin := geo.Point{Lat: *hospital.Lat, Lon: *hospital.Lon}
	candidates, err := u.matcher.FindMatches(ctx, request.BloodType, origin, u.defaultRadiusKM, nil)
	if err != nil {
		u.log.Warnf("Match pass failed for request %s: %+v", request.ID, err)
		return
	}

	u.notifier.NotifyMatchedDonors(ctx, request, candidates)
}

func (u *requestUsecase) GetRequest(ctx context.Context, id uuid.UUID) (*dto.RequestResponse, error) {
	request, err := u.requestRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find request %s: %+v", id, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}
	return converter.RequestToResponse(request), nil
}

func (u *requestUsecase) ListRequests(ctx context.Context, filter *entity.RequestFilter) (*dto.RequestListResponse, error) {
	requests, err := u.requestRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list requests: %+v", err)
		return nil, err
	}

	return &dto.RequestListResponse{
		Requests: converter.RequestsToResponses(requests),
		Total:    len(requests),
	}, nil
}

func (u *requestUsecase) UpdateRequest(ctx context.Context, id uuid.UUID, req *dto.UpdateRequestRequest) (*dto.RequestResponse, error) {
	request, err := u.requestRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find request %s: %+v", id, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	// Status is deliberately not editable here; fulfillment only happens
	// through donation confirmation.
	if req.BloodType != "" {
		request.BloodType = entity.NormalizeBloodType(req.BloodType)
	}
	if req.Quantity != nil {
		request.Quantity = *req.Quantity
	}
	if req.PatientCondition != "" {
		request.PatientCondition = req.PatientCondition
	}

	if err := u.requestRepo.Update(u.db.WithContext(ctx), request); err != nil {
		u.log.Warnf("Failed to update request %s: %+v", id, err)
		return nil, err
	}

	return converter.RequestToResponse(request), nil
}

func (u *requestUsecase) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	affected, err := u.requestRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete request %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrRequestNotFound
	}

	// Cascade: responses are meaningless without their request
	if err := u.responseRepo.DeleteByRequestID(u.db.WithContext(ctx), id); err != nil {
		u.log.Errorf("Request %s deleted but responses not cleaned up: %+v", id, err)
		return err
	}

	u.log.Infof("Request %s and its responses deleted", id)
	return nil
}

func (u *requestUsecase) Fulfill(ctx context.Context, requestID uuid.UUID) error {
	if err := u.requestRepo.UpdateStatus(u.db.WithContext(ctx), requestID, entity.RequestStatusFulfilled); err != nil {
		u.log.Warnf("Failed to fulfill request %s: %+v", requestID, err)
		return err
	}
	u.log.Infof("Request %s fulfilled", requestID)
	return nil
}

func (u *requestUsecase) FindMatchesForRequest(ctx context.Context, id uuid.UUID, radiusKM float64) (*dto.MatchListResponse, error) {
	request, err := u.requestRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find request %s: %+v", id, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	hospital, err := u.userRepo.FindByID(u.db.WithContext(ctx), request.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", request.HospitalID, err)
		return nil, err
	}
	if hospital == nil || !hospital.HasCoordinates() {
		return nil, ErrHospitalUnlocated
	}

	exclude, err := u.responseRepo.FindDonorIDsByRequestID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to load responding donors for request %s: %+v", id, err)
		return nil, err
	}

	if radiusKM <= 0 {
		radiusKM = u.defaultRadiusKM
	}

	origin := geo.Point{Lat: *hospital.Lat, Lon: *hospital.Lon}
	candidates, err := u.matcher.FindMatches(ctx, request.BloodType, origin, radiusKM, exclude)
	if err != nil {
		return nil, err
	}

	return &dto.MatchListResponse{
		RequestID: request.ID,
		BloodType: request.BloodType,
		RadiusKM:  radiusKM,
		Matches:   candidates,
		Total:     len(candidates),
	}, nil
}
