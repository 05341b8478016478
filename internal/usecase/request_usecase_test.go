package usecase

import (
	"context"
	"testing"

	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Accra city center, used as the hospital origin in matching tests.
const (
	accraLat = 5.6037
	accraLon = -0.1870
)

// kmToLatDegrees converts a north-south distance to a latitude offset.
func kmToLatDegrees(km float64) float64 {
	return km / 111.195
}

type requestFixture struct {
	usecase      RequestUsecase
	requestRepo  *fakeRequestRepo
	responseRepo *fakeResponseRepo
	userRepo     *fakeUserRepo
	hospital     *entity.User
}

func newRequestFixture(t *testing.T) *requestFixture {
	t.Helper()

	log := newTestLogger()
	db := newTestDB()
	f := &requestFixture{
		requestRepo:  newFakeRequestRepo(),
		responseRepo: newFakeResponseRepo(),
		userRepo:     newFakeUserRepo(),
	}

	lat, lon := accraLat, accraLon
	f.hospital = f.userRepo.add(&entity.User{
		Email:    "hospital@example.com",
		FullName: "Ridge Hospital",
		RoleID:   entity.RoleIDHospital,
		Location: "Accra, Ghana",
		Lat:      &lat,
		Lon:      &lon,
	})

	matcher := service.NewMatcherService(db, log, f.userRepo, 500.0)
	f.usecase = NewRequestUsecase(
		db,
		log,
		f.requestRepo,
		f.responseRepo,
		f.userRepo,
		matcher,
		service.NewNotifierService(log),
		50.0,
	)
	return f
}

func (f *requestFixture) addDonor(t *testing.T, bloodType entity.BloodType, distanceKM float64) *entity.User {
	t.Helper()
	lat := accraLat + kmToLatDegrees(distanceKM)
	lon := accraLon
	return f.userRepo.add(&entity.User{
		Email:              uuid.New().String() + "@example.com",
		FullName:           "Donor " + string(bloodType),
		RoleID:             entity.RoleIDDonor,
		BloodType:          bloodType,
		Lat:                &lat,
		Lon:                &lon,
		AvailabilityStatus: entity.AvailabilityAvailable,
	})
}

func (f *requestFixture) createRequest(t *testing.T, bloodType string) *dto.RequestResponse {
	t.Helper()
	result, err := f.usecase.CreateRequest(context.Background(), f.hospital.ID, &dto.CreateRequestRequest{
		BloodType: bloodType,
		Quantity:  2,
	})
	require.NoError(t, err)
	return result
}

func TestCreateRequestNormalizesBloodType(t *testing.T) {
	f := newRequestFixture(t)

	result := f.createRequest(t, " a+ ")

	assert.Equal(t, "A+", result.BloodType)
	assert.Equal(t, string(entity.RequestStatusActive), result.Status)
	assert.Equal(t, f.hospital.ID, result.HospitalID)
}

func TestCreateRequestSucceedsWithoutHospitalCoordinates(t *testing.T) {
	f := newRequestFixture(t)
	f.hospital.Lat = nil
	f.hospital.Lon = nil

	// The immediate match pass is skipped but creation still succeeds
	result := f.createRequest(t, "B+")

	assert.Equal(t, string(entity.RequestStatusActive), result.Status)
}

func TestCreateRequestHospitalNotFound(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.usecase.CreateRequest(context.Background(), uuid.New(), &dto.CreateRequestRequest{
		BloodType: "A+",
		Quantity:  1,
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindMatchesOrdersByDistanceAndFiltersCompatibility(t *testing.T) {
	f := newRequestFixture(t)
	nearUniversal := f.addDonor(t, entity.BloodONegative, 5)
	f.addDonor(t, entity.BloodBPositive, 3) // incompatible with A+
	farExact := f.addDonor(t, entity.BloodAPositive, 40)
	f.addDonor(t, entity.BloodAPositive, 120) // outside the default radius

	request := f.createRequest(t, "A+")

	result, err := f.usecase.FindMatchesForRequest(context.Background(), request.ID, 0)
	require.NoError(t, err)

	assert.Equal(t, 50.0, result.RadiusKM)
	require.Len(t, result.Matches, 2)
	assert.Equal(t, nearUniversal.ID, result.Matches[0].ID)
	assert.Equal(t, farExact.ID, result.Matches[1].ID)
	assert.InDelta(t, 5.0, result.Matches[0].DistanceKM, 0.1)
	assert.InDelta(t, 40.0, result.Matches[1].DistanceKM, 0.1)
}

func TestFindMatchesExcludesRespondedDonors(t *testing.T) {
	f := newRequestFixture(t)
	responded := f.addDonor(t, entity.BloodAPositive, 5)
	fresh := f.addDonor(t, entity.BloodAPositive, 10)
	request := f.createRequest(t, "A+")

	require.NoError(t, f.responseRepo.Create(nil, &entity.DonationResponse{
		RequestID: request.ID,
		DonorID:   responded.ID,
		Status:    entity.ResponseStatusCommitted,
	}))

	result, err := f.usecase.FindMatchesForRequest(context.Background(), request.ID, 0)
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, fresh.ID, result.Matches[0].ID)
}

func TestFindMatchesSkipsUnavailableDonors(t *testing.T) {
	f := newRequestFixture(t)
	unavailable := f.addDonor(t, entity.BloodAPositive, 5)
	unavailable.AvailabilityStatus = entity.AvailabilityUnavailable
	request := f.createRequest(t, "A+")

	result, err := f.usecase.FindMatchesForRequest(context.Background(), request.ID, 0)
	require.NoError(t, err)

	assert.Empty(t, result.Matches)
}

func TestFindMatchesHospitalUnlocated(t *testing.T) {
	f := newRequestFixture(t)
	request := f.createRequest(t, "A+")
	f.hospital.Lat = nil
	f.hospital.Lon = nil

	_, err := f.usecase.FindMatchesForRequest(context.Background(), request.ID, 0)

	assert.ErrorIs(t, err, ErrHospitalUnlocated)
}

func TestFindMatchesRequestNotFound(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.usecase.FindMatchesForRequest(context.Background(), uuid.New(), 0)

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestFindMatchesInvalidRadius(t *testing.T) {
	f := newRequestFixture(t)
	request := f.createRequest(t, "A+")

	_, err := f.usecase.FindMatchesForRequest(context.Background(), request.ID, 9000)

	assert.ErrorIs(t, err, service.ErrInvalidRadius)
}

func TestUpdateRequestPartial(t *testing.T) {
	f := newRequestFixture(t)
	request := f.createRequest(t, "A+")

	quantity := 5
	result, err := f.usecase.UpdateRequest(context.Background(), request.ID, &dto.UpdateRequestRequest{
		Quantity: &quantity,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Quantity)
	assert.Equal(t, "A+", result.BloodType)
	assert.Equal(t, string(entity.RequestStatusActive), result.Status)
}

func TestDeleteRequestCascadesResponses(t *testing.T) {
	f := newRequestFixture(t)
	request := f.createRequest(t, "A+")
	require.NoError(t, f.responseRepo.Create(nil, &entity.DonationResponse{
		RequestID: request.ID,
		DonorID:   uuid.New(),
		Status:    entity.ResponseStatusCommitted,
	}))

	require.NoError(t, f.usecase.DeleteRequest(context.Background(), request.ID))

	stored, _ := f.requestRepo.FindByID(nil, request.ID)
	assert.Nil(t, stored)
	assert.Equal(t, []uuid.UUID{request.ID}, f.responseRepo.deletedRequests)

	remaining, _ := f.responseRepo.FindByRequestID(nil, request.ID)
	assert.Empty(t, remaining)
}

func TestDeleteRequestNotFound(t *testing.T) {
	f := newRequestFixture(t)

	err := f.usecase.DeleteRequest(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestFulfillMarksRequestFulfilled(t *testing.T) {
	f := newRequestFixture(t)
	request := f.createRequest(t, "A+")

	require.NoError(t, f.usecase.Fulfill(context.Background(), request.ID))

	stored, _ := f.requestRepo.FindByID(nil, request.ID)
	assert.Equal(t, entity.RequestStatusFulfilled, stored.Status)
}

func TestGetRequestNotFound(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.usecase.GetRequest(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrRequestNotFound)
}
