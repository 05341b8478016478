package converter

import (
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
)

// CampaignToResponse converts a Campaign entity to CampaignResponse DTO
func CampaignToResponse(campaign *entity.Campaign) *dto.CampaignResponse {
	if campaign == nil {
		return nil
	}

	return &dto.CampaignResponse{
		ID:          campaign.ID,
		Title:       campaign.Title,
		Description: campaign.Description,
		Location:    campaign.Location,
		StartDate:   campaign.StartDate.Format("2006-01-02"),
		EndDate:     campaign.EndDate.Format("2006-01-02"),
		CreatedAt:   campaign.CreatedAt,
		UpdatedAt:   campaign.UpdatedAt,
	}
}

// CampaignsToResponses converts a slice of Campaign entities to CampaignResponse DTOs
func CampaignsToResponses(campaigns []entity.Campaign) []dto.CampaignResponse {
	responses := make([]dto.CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		resp := CampaignToResponse(&campaign)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// SignupToResponse converts a VolunteerSignup entity to SignupResponse DTO.
// The campaign may be passed explicitly when it was loaded separately.
func SignupToResponse(signup *entity.VolunteerSignup, campaign *entity.Campaign) *dto.SignupResponse {
	if signup == nil {
		return nil
	}

	response := &dto.SignupResponse{
		ID:         signup.ID,
		CampaignID: signup.CampaignID,
		SignedUpAt: signup.SignedUpAt,
	}

	if campaign != nil {
		response.CampaignTitle = campaign.Title
	} else if signup.Campaign.ID != uuid.Nil {
		response.CampaignTitle = signup.Campaign.Title
	}

	return response
}

// SignupsToResponses converts a slice of VolunteerSignup entities to SignupResponse DTOs
func SignupsToResponses(signups []entity.VolunteerSignup) []dto.SignupResponse {
	responses := make([]dto.SignupResponse, len(signups))
	for i, signup := range signups {
		resp := SignupToResponse(&signup, nil)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
