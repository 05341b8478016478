package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"lifelink/internal/domain/entity"
	"lifelink/pkg/geo"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	donors     []entity.User
	err        error
	gotTypes   []entity.BloodType
	gotExclude []uuid.UUID
}

func (s *stubUserRepo) Create(_ *gorm.DB, _ *entity.User) error                { return nil }
func (s *stubUserRepo) FindByID(_ *gorm.DB, _ uuid.UUID) (*entity.User, error) { return nil, nil }
func (s *stubUserRepo) FindByEmail(_ *gorm.DB, _ string) (*entity.User, error) { return nil, nil }
func (s *stubUserRepo) Update(_ *gorm.DB, _ *entity.User) error                { return nil }

func (s *stubUserRepo) FindAvailableDonors(_ *gorm.DB, bloodTypes []entity.BloodType, exclude []uuid.UUID) ([]entity.User, error) {
	s.gotTypes = bloodTypes
	s.gotExclude = exclude
	return s.donors, s.err
}

func newMatcher(repo *stubUserRepo) *MatcherService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewMatcherService(&gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}, log, repo, 500.0)
}

func donorAt(name string, bloodType entity.BloodType, lat, lon float64) entity.User {
	return entity.User{
		ID:        uuid.New(),
		FullName:  name,
		RoleID:    entity.RoleIDDonor,
		BloodType: bloodType,
		Lat:       &lat,
		Lon:       &lon,
	}
}

var origin = geo.Point{Lat: 5.6037, Lon: -0.1870}

func TestFindMatchesSortsByDistance(t *testing.T) {
	// Latitude offsets of roughly 27km, 9km and 18km north of the origin
	far := donorAt("Far", entity.BloodAPositive, origin.Lat+0.243, origin.Lon)
	near := donorAt("Near", entity.BloodONegative, origin.Lat+0.081, origin.Lon)
	mid := donorAt("Mid", entity.BloodAPositive, origin.Lat+0.162, origin.Lon)
	repo := &stubUserRepo{donors: []entity.User{far, near, mid}}

	matches, err := newMatcher(repo).FindMatches(context.Background(), entity.BloodAPositive, origin, 50, nil)

	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, []uuid.UUID{near.ID, mid.ID, far.ID}, []uuid.UUID{matches[0].ID, matches[1].ID, matches[2].ID})
	assert.Less(t, matches[0].DistanceKM, matches[1].DistanceKM)
	assert.Less(t, matches[1].DistanceKM, matches[2].DistanceKM)
}

func TestFindMatchesQueriesCompatibleTypes(t *testing.T) {
	repo := &stubUserRepo{}
	excluded := uuid.New()

	_, err := newMatcher(repo).FindMatches(context.Background(), entity.BloodAPositive, origin, 50, []uuid.UUID{excluded})

	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.BloodType{
		entity.BloodAPositive, entity.BloodANegative,
		entity.BloodOPositive, entity.BloodONegative,
	}, repo.gotTypes)
	assert.Equal(t, []uuid.UUID{excluded}, repo.gotExclude)
}

func TestFindMatchesDropsDonorsOutsideRadius(t *testing.T) {
	inside := donorAt("Inside", entity.BloodONegative, origin.Lat+0.09, origin.Lon)
	outside := donorAt("Outside", entity.BloodONegative, origin.Lat+0.9, origin.Lon)
	repo := &stubUserRepo{donors: []entity.User{inside, outside}}

	matches, err := newMatcher(repo).FindMatches(context.Background(), entity.BloodONegative, origin, 50, nil)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, inside.ID, matches[0].ID)
}

func TestFindMatchesSkipsDonorsWithoutCoordinates(t *testing.T) {
	located := donorAt("Located", entity.BloodONegative, origin.Lat+0.05, origin.Lon)
	unlocated := entity.User{ID: uuid.New(), FullName: "Unlocated", BloodType: entity.BloodONegative}
	repo := &stubUserRepo{donors: []entity.User{unlocated, located}}

	matches, err := newMatcher(repo).FindMatches(context.Background(), entity.BloodONegative, origin, 50, nil)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, located.ID, matches[0].ID)
}

func TestFindMatchesInvalidRadius(t *testing.T) {
	repo := &stubUserRepo{}
	matcher := newMatcher(repo)

	for _, radius := range []float64{0, -1, 501} {
		_, err := matcher.FindMatches(context.Background(), entity.BloodAPositive, origin, radius, nil)
		assert.ErrorIs(t, err, ErrInvalidRadius)
	}
}

func TestFindMatchesRepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &stubUserRepo{err: repoErr}

	_, err := newMatcher(repo).FindMatches(context.Background(), entity.BloodAPositive, origin, 50, nil)

	assert.ErrorIs(t, err, repoErr)
}

func TestFindMatchesRoundsDisplayDistance(t *testing.T) {
	donor := donorAt("Donor", entity.BloodONegative, origin.Lat+0.1, origin.Lon)
	repo := &stubUserRepo{donors: []entity.User{donor}}

	matches, err := newMatcher(repo).FindMatches(context.Background(), entity.BloodONegative, origin, 50, nil)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	rounded := matches[0].DistanceKM
	assert.Equal(t, geo.Round2(rounded), rounded)
}

func TestBestMatchReturnsClosest(t *testing.T) {
	near := donorAt("Near", entity.BloodONegative, origin.Lat+0.05, origin.Lon)
	far := donorAt("Far", entity.BloodONegative, origin.Lat+0.2, origin.Lon)
	repo := &stubUserRepo{donors: []entity.User{far, near}}

	best, err := newMatcher(repo).BestMatch(context.Background(), entity.BloodONegative, origin, 50, nil)

	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, near.ID, best.ID)
}

func TestBestMatchNoCandidates(t *testing.T) {
	repo := &stubUserRepo{}

	best, err := newMatcher(repo).BestMatch(context.Background(), entity.BloodAPositive, origin, 50, nil)

	require.NoError(t, err)
	assert.Nil(t, best)
}
