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

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrCampaignTitleTaken = errors.New("a campaign with this title already exists")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
)

type CampaignUsecase interface {
	CreateCampaign(ctx context.Context, req *dto.CreateCampaignRequest) (*dto.CampaignResponse, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*dto.CampaignResponse, error)
	ListCampaigns(ctx context.Context) (*dto.CampaignListResponse, error)
	UpdateCampaign(ctx context.Context, id uuid.UUID, req *dto.UpdateCampaignRequest) (*dto.CampaignResponse, error)
	// DeleteCampaign removes a campaign and cascades to its signups.
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
}

type campaignUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	campaignRepo repository.CampaignRepository
	signupRepo   repository.VolunteerSignupRepository
}

func NewCampaignUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	campaignRepo repository.CampaignRepository,
	signupRepo repository.VolunteerSignupRepository,
) CampaignUsecase {
	return &campaignUsecase{
		db:           db,
		log:          log,
		campaignRepo: campaignRepo,
		signupRepo:   signupRepo,
	}
}

func (u *campaignUsecase) CreateCampaign(ctx context.Context, req *dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	campaign := &entity.Campaign{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	if err := u.campaignRepo.Create(u.db.WithContext(ctx), campaign); err != nil {
		if isDuplicateKeyError(err, "title") {
			return nil, ErrCampaignTitleTaken
		}
		u.log.Warnf("Failed to create campaign: %+v", err)
		return nil, err
	}

	u.log.Infof("Campaign created: id=%s, title=%q", campaign.ID, campaign.Title)
	return converter.CampaignToResponse(campaign), nil
}

func (u *campaignUsecase) GetCampaign(ctx context.Context, id uuid.UUID) (*dto.CampaignResponse, error) {
	campaign, err := u.campaignRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find campaign %s: %+v", id, err)
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return converter.CampaignToResponse(campaign), nil
}

func (u *campaignUsecase) ListCampaigns(ctx context.Context) (*dto.CampaignListResponse, error) {
	campaigns, err := u.campaignRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list campaigns: %+v", err)
		return nil, err
	}

	return &dto.CampaignListResponse{
		Campaigns: converter.CampaignsToResponses(campaigns),
		Total:     len(campaigns),
	}, nil
}

func (u *campaignUsecase) UpdateCampaign(ctx context.Context, id uuid.UUID, req *dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	campaign, err := u.campaignRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find campaign %s: %+v", id, err)
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	if req.Title != "" {
		campaign.Title = req.Title
	}
	if req.Description != "" {
		campaign.Description = req.Description
	}
	if req.Location != "" {
		campaign.Location = req.Location
	}
	if req.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		campaign.StartDate = startDate
	}
	if req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		campaign.EndDate = endDate
	}
	if campaign.EndDate.Before(campaign.StartDate) {
		return nil, ErrInvalidDateRange
	}

	if err := u.campaignRepo.Update(u.db.WithContext(ctx), campaign); err != nil {
		if isDuplicateKeyError(err, "title") {
			return nil, ErrCampaignTitleTaken
		}
		u.log.Warnf("Failed to update campaign %s: %+v", id, err)
		return nil, err
	}

	return converter.CampaignToResponse(campaign), nil
}

func (u *campaignUsecase) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	affected, err := u.campaignRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete campaign %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrCampaignNotFound
	}

	// Cascade: signups reference a campaign that no longer exists
	if err := u.signupRepo.DeleteByCampaignID(u.db.WithContext(ctx), id); err != nil {
		u.log.Errorf("Campaign %s deleted but signups not cleaned up: %+v", id, err)
		return err
	}

	u.log.Infof("Campaign %s and its signups deleted", id)
	return nil
}
