package service

import (
	"context"

	"lifelink/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// NotifierService simulates donor and hospital notifications via structured
// logging. Real delivery (email, push) would hang off these hooks.
type NotifierService struct {
	log *logrus.Logger
}

func NewNotifierService(log *logrus.Logger) *NotifierService {
	return &NotifierService{log: log}
}

// NotifyMatchedDonors announces a new request to the donors a match pass
// found for it
func (s *NotifierService) NotifyMatchedDonors(ctx context.Context, request *entity.BloodRequest, candidates []MatchCandidate) {
	if len(candidates) == 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": request.ID,
			"blood_type": request.BloodType,
		}).Info("No available compatible donors found for new request")
		return
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  request.ID,
		"blood_type":  request.BloodType,
		"donor_count": len(candidates),
	}).Info("New request matched nearby donors, notifications queued")
}

// NotifyHospitalOfResponse announces a donor response to the issuing
// hospital
func (s *NotifierService) NotifyHospitalOfResponse(ctx context.Context, response *entity.DonationResponse) {
	s.log.WithFields(logrus.Fields{
		"response_id": response.ID,
		"request_id":  response.RequestID,
		"status":      response.Status,
	}).Info("Donor response recorded, hospital notified")
}
