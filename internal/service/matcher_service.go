package service

import (
	"context"
	"errors"

	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"
	"lifelink/pkg/geo"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrInvalidRadius is returned when a search radius is zero, negative or
// above the configured maximum
var ErrInvalidRadius = errors.New("search radius out of range")

// MatchCandidate is a donor summary produced by a match pass. DistanceKM is
// rounded to two decimals for display; internal ordering uses the unrounded
// distance.
type MatchCandidate struct {
	ID          uuid.UUID        `json:"id"`
	FullName    string           `json:"full_name"`
	Email       string           `json:"email"`
	PhoneNumber string           `json:"phone_number,omitempty"`
	BloodType   entity.BloodType `json:"blood_type"`
	DistanceKM  float64          `json:"distance_km"`
}

// MatcherService finds compatible donors near a hospital. Read-only: a
// match pass never mutates donor or request state.
type MatcherService struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	maxRadiusKM float64
}

func NewMatcherService(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository, maxRadiusKM float64) *MatcherService {
	return &MatcherService{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		maxRadiusKM: maxRadiusKM,
	}
}

// FindMatches returns available, blood-compatible donors within radiusKM of
// origin, ordered by ascending distance. Donors in exclude (already engaged
// with the request) and donors without stored coordinates are skipped. An
// empty result is not an error.
func (s *MatcherService) FindMatches(
	ctx context.Context,
	bloodType entity.BloodType,
	origin geo.Point,
	radiusKM float64,
	exclude []uuid.UUID,
) ([]MatchCandidate, error) {
	if radiusKM <= 0 || radiusKM > s.maxRadiusKM {
		return nil, ErrInvalidRadius
	}

	compatibleTypes := bloodType.CompatibleDonorTypes()

	donors, err := s.userRepo.FindAvailableDonors(s.db.WithContext(ctx), compatibleTypes, exclude)
	if err != nil {
		s.log.Warnf("Failed to query donors for blood type %s: %+v", bloodType, err)
		return nil, err
	}

	ranked := geo.WithinRadius(origin, radiusKM, donors, func(donor entity.User) (geo.Point, bool) {
		if !donor.HasCoordinates() {
			// Never abort a whole pass over one unlocatable donor
			s.log.Debugf("Skipping donor %s: no stored coordinates", donor.ID)
			return geo.Point{}, false
		}
		return geo.Point{Lat: *donor.Lat, Lon: *donor.Lon}, true
	})

	candidates := make([]MatchCandidate, len(ranked))
	for i, r := range ranked {
		candidates[i] = MatchCandidate{
			ID:          r.Value.ID,
			FullName:    r.Value.FullName,
			Email:       r.Value.Email,
			PhoneNumber: r.Value.PhoneNumber,
			BloodType:   r.Value.BloodType,
			DistanceKM:  geo.Round2(r.DistanceKM),
		}
	}

	return candidates, nil
}

// BestMatch returns the closest matching donor, or nil when no compatible
// donor is in range. Used for sequential retry when an engaged donor drops
// out.
func (s *MatcherService) BestMatch(
	ctx context.Context,
	bloodType entity.BloodType,
	origin geo.Point,
	radiusKM float64,
	exclude []uuid.UUID,
) (*MatchCandidate, error) {
	candidates, err := s.FindMatches(ctx, bloodType, origin, radiusKM, exclude)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return &candidates[0], nil
}
