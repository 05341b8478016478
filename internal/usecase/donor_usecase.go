package usecase

import (
	"context"
	"errors"

	"lifelink/internal/converter"
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"
	"lifelink/internal/infrastructure/geocoding"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidAvailability = errors.New("availability must be available or unavailable")

type DonorUsecase interface {
	// GetDonationHistory returns the donor's completed donation records,
	// newest first.
	GetDonationHistory(ctx context.Context, donorID uuid.UUID) (*dto.DonationHistoryResponse, error)
	GetProfile(ctx context.Context, donorID uuid.UUID) (*dto.UserResponse, error)
	// UpdateProfile applies partial updates. Changing the location re-runs
	// geocoding and fails the update when the new location cannot be
	// resolved.
	UpdateProfile(ctx context.Context, donorID uuid.UUID, req *dto.UpdateDonorProfileRequest) (*dto.UserResponse, error)
}

type donorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	recordRepo repository.DonationRecordRepository
	geocoder   geocoding.Geocoder
}

func NewDonorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	recordRepo repository.DonationRecordRepository,
	geocoder geocoding.Geocoder,
) DonorUsecase {
	return &donorUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		recordRepo: recordRepo,
		geocoder:   geocoder,
	}
}

func (u *donorUsecase) GetDonationHistory(ctx context.Context, donorID uuid.UUID) (*dto.DonationHistoryResponse, error) {
	records, err := u.recordRepo.FindCompletedByDonorID(u.db.WithContext(ctx), donorID)
	if err != nil {
		u.log.Warnf("Failed to load donation history for donor %s: %+v", donorID, err)
		return nil, err
	}

	return &dto.DonationHistoryResponse{
		Records: converter.RecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *donorUsecase) GetProfile(ctx context.Context, donorID uuid.UUID) (*dto.UserResponse, error) {
	donor, err := u.userRepo.FindByID(u.db.WithContext(ctx), donorID)
	if err != nil {
		u.log.Warnf("Failed to find donor %s: %+v", donorID, err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(donor), nil
}

func (u *donorUsecase) UpdateProfile(ctx context.Context, donorID uuid.UUID, req *dto.UpdateDonorProfileRequest) (*dto.UserResponse, error) {
	donor, err := u.userRepo.FindByID(u.db.WithContext(ctx), donorID)
	if err != nil {
		u.log.Warnf("Failed to find donor %s: %+v", donorID, err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrUserNotFound
	}

	if req.FullName != "" {
		donor.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		donor.PhoneNumber = req.PhoneNumber
	}
	if req.BloodType != "" {
		donor.BloodType = entity.NormalizeBloodType(req.BloodType)
	}

	if req.AvailabilityStatus != "" {
		status := entity.AvailabilityStatus(req.AvailabilityStatus)
		if status != entity.AvailabilityAvailable && status != entity.AvailabilityUnavailable {
			return nil, ErrInvalidAvailability
		}
		donor.AvailabilityStatus = status
	}

	if req.Location != "" && req.Location != donor.Location {
		coords, err := u.geocoder.Geocode(ctx, req.Location)
		if err != nil {
			if errors.Is(err, geocoding.ErrLocationNotFound) {
				return nil, ErrLocationUnresolvable
			}
			u.log.Warnf("Geocoding failed for %q: %+v", req.Location, err)
			return nil, err
		}
		donor.Location = req.Location
		donor.Lat = &coords.Lat
		donor.Lon = &coords.Lon
	}

	if err := u.userRepo.Update(u.db.WithContext(ctx), donor); err != nil {
		u.log.Warnf("Failed to update donor %s: %+v", donorID, err)
		return nil, err
	}

	return converter.UserToResponse(donor), nil
}
