package usecase

import (
	"context"
	"io"
	"time"

	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// The repository layer takes *gorm.DB as an explicit argument, so the fakes
// below ignore it and serve from in-memory maps. The usecases only ever
// derive sessions via WithContext, which a bare DB value supports.
func newTestDB() *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func duplicateKeyError(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

type fakeRequestRepo struct {
	requests map[uuid.UUID]*entity.BloodRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uuid.UUID]*entity.BloodRequest)}
}

func (f *fakeRequestRepo) Create(_ *gorm.DB, request *entity.BloodRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	request.CreatedAt = time.Now()
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRequestRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.BloodRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, nil
	}
	copied := *request
	return &copied, nil
}

func (f *fakeRequestRepo) FindAll(_ *gorm.DB, _ *entity.RequestFilter) ([]entity.BloodRequest, error) {
	out := make([]entity.BloodRequest, 0, len(f.requests))
	for _, request := range f.requests {
		out = append(out, *request)
	}
	return out, nil
}

func (f *fakeRequestRepo) Update(_ *gorm.DB, request *entity.BloodRequest) error {
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRequestRepo) UpdateStatus(_ *gorm.DB, id uuid.UUID, status entity.RequestStatus) error {
	if request, ok := f.requests[id]; ok {
		request.Status = status
	}
	return nil
}

func (f *fakeRequestRepo) Delete(_ *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := f.requests[id]; !ok {
		return 0, nil
	}
	delete(f.requests, id)
	return 1, nil
}

type fakeResponseRepo struct {
	responses       map[uuid.UUID]*entity.DonationResponse
	deletedRequests []uuid.UUID
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{responses: make(map[uuid.UUID]*entity.DonationResponse)}
}

func (f *fakeResponseRepo) Create(_ *gorm.DB, response *entity.DonationResponse) error {
	for _, existing := range f.responses {
		if existing.RequestID == response.RequestID && existing.DonorID == response.DonorID {
			return duplicateKeyError("idx_responses_request_donor")
		}
	}
	if response.ID == uuid.Nil {
		response.ID = uuid.New()
	}
	copied := *response
	f.responses[response.ID] = &copied
	return nil
}

func (f *fakeResponseRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.DonationResponse, error) {
	response, ok := f.responses[id]
	if !ok {
		return nil, nil
	}
	copied := *response
	return &copied, nil
}

func (f *fakeResponseRepo) FindByRequestAndDonor(_ *gorm.DB, requestID, donorID uuid.UUID) (*entity.DonationResponse, error) {
	for _, response := range f.responses {
		if response.RequestID == requestID && response.DonorID == donorID {
			copied := *response
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeResponseRepo) FindByRequestID(_ *gorm.DB, requestID uuid.UUID) ([]entity.DonationResponse, error) {
	var out []entity.DonationResponse
	for _, response := range f.responses {
		if response.RequestID == requestID {
			out = append(out, *response)
		}
	}
	return out, nil
}

func (f *fakeResponseRepo) FindDonorIDsByRequestID(_ *gorm.DB, requestID uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, response := range f.responses {
		if response.RequestID == requestID {
			out = append(out, response.DonorID)
		}
	}
	return out, nil
}

func (f *fakeResponseRepo) TransitionStatus(_ *gorm.DB, id uuid.UUID, from, to entity.ResponseStatus) (int64, error) {
	response, ok := f.responses[id]
	if !ok || response.Status != from {
		return 0, nil
	}
	response.Status = to
	return 1, nil
}

func (f *fakeResponseRepo) SetStatus(_ *gorm.DB, id uuid.UUID, status entity.ResponseStatus) error {
	if response, ok := f.responses[id]; ok {
		response.Status = status
	}
	return nil
}

func (f *fakeResponseRepo) DeleteByRequestID(_ *gorm.DB, requestID uuid.UUID) error {
	f.deletedRequests = append(f.deletedRequests, requestID)
	for id, response := range f.responses {
		if response.RequestID == requestID {
			delete(f.responses, id)
		}
	}
	return nil
}

type fakeRecordRepo struct {
	records map[uuid.UUID]*entity.DonationRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[uuid.UUID]*entity.DonationRecord)}
}

func (f *fakeRecordRepo) Create(_ *gorm.DB, record *entity.DonationRecord) error {
	if _, ok := f.records[record.OriginalResponseID]; ok {
		return duplicateKeyError("idx_donation_records_original_response_id")
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	copied := *record
	f.records[record.OriginalResponseID] = &copied
	return nil
}

func (f *fakeRecordRepo) FindByResponseID(_ *gorm.DB, responseID uuid.UUID) (*entity.DonationRecord, error) {
	record, ok := f.records[responseID]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (f *fakeRecordRepo) FindCompletedByDonorID(_ *gorm.DB, donorID uuid.UUID) ([]entity.DonationRecord, error) {
	var out []entity.DonationRecord
	for _, record := range f.records {
		if record.DonorID == donorID {
			out = append(out, *record)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) add(user *entity.User) *entity.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) Create(_ *gorm.DB, user *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return duplicateKeyError("idx_users_email")
		}
	}
	f.add(user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ *gorm.DB, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindAvailableDonors(_ *gorm.DB, bloodTypes []entity.BloodType, exclude []uuid.UUID) ([]entity.User, error) {
	allowed := make(map[entity.BloodType]bool, len(bloodTypes))
	for _, bt := range bloodTypes {
		allowed[bt] = true
	}
	excluded := make(map[uuid.UUID]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	var out []entity.User
	for _, user := range f.users {
		if user.RoleID != entity.RoleIDDonor || !user.IsAvailable() {
			continue
		}
		if !allowed[user.BloodType] || excluded[user.ID] {
			continue
		}
		out = append(out, *user)
	}
	return out, nil
}

type fakeLifecycle struct {
	fulfilled []uuid.UUID
	err       error
}

func (f *fakeLifecycle) Fulfill(_ context.Context, requestID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.fulfilled = append(f.fulfilled, requestID)
	return nil
}
