package usecase

import (
	"context"
	"errors"
	"time"

	"lifelink/internal/converter"
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAlreadySignedUp = errors.New("you have already signed up for this campaign")

type VolunteerUsecase interface {
	// SignupForCampaign registers a volunteer for a campaign. One signup per
	// volunteer per campaign.
	SignupForCampaign(ctx context.Context, volunteerID, campaignID uuid.UUID) (*dto.SignupResponse, error)
	GetMySignups(ctx context.Context, volunteerID uuid.UUID) (*dto.SignupListResponse, error)
}

type volunteerUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	campaignRepo repository.CampaignRepository
	signupRepo   repository.VolunteerSignupRepository
}

func NewVolunteerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	campaignRepo repository.CampaignRepository,
	signupRepo repository.VolunteerSignupRepository,
) VolunteerUsecase {
	return &volunteerUsecase{
		db:           db,
		log:          log,
		campaignRepo: campaignRepo,
		signupRepo:   signupRepo,
	}
}

func (u *volunteerUsecase) SignupForCampaign(ctx context.Context, volunteerID, campaignID uuid.UUID) (*dto.SignupResponse, error) {
	campaign, err := u.campaignRepo.FindByID(u.db.WithContext(ctx), campaignID)
	if err != nil {
		u.log.Warnf("Failed to find campaign %s: %+v", campaignID, err)
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	existing, err := u.signupRepo.FindByCampaignAndVolunteer(u.db.WithContext(ctx), campaignID, volunteerID)
	if err != nil {
		u.log.Warnf("Failed to check existing signup for campaign %s: %+v", campaignID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadySignedUp
	}

	signup := &entity.VolunteerSignup{
		CampaignID:  campaignID,
		VolunteerID: volunteerID,
		SignedUpAt:  time.Now().UTC(),
	}

	if err := u.signupRepo.Create(u.db.WithContext(ctx), signup); err != nil {
		if isDuplicateKeyError(err, "idx_signups_campaign_volunteer") {
			return nil, ErrAlreadySignedUp
		}
		u.log.Warnf("Failed to create signup for campaign %s: %+v", campaignID, err)
		return nil, err
	}

	u.log.Infof("Volunteer %s signed up for campaign %s", volunteerID, campaignID)
	return converter.SignupToResponse(signup, campaign), nil
}

func (u *volunteerUsecase) GetMySignups(ctx context.Context, volunteerID uuid.UUID) (*dto.SignupListResponse, error) {
	signups, err := u.signupRepo.FindByVolunteerID(u.db.WithContext(ctx), volunteerID)
	if err != nil {
		u.log.Warnf("Failed to list signups for volunteer %s: %+v", volunteerID, err)
		return nil, err
	}

	return &dto.SignupListResponse{
		Signups: converter.SignupsToResponses(signups),
		Total:   len(signups),
	}, nil
}
