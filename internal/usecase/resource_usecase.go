package usecase

import (
	"context"
	"errors"

	"lifelink/internal/converter"
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrResourceNotFound = errors.New("educational resource not found")

type ResourceUsecase interface {
	CreateResource(ctx context.Context, req *dto.CreateResourceRequest) (*dto.ResourceResponse, error)
	GetResource(ctx context.Context, id uuid.UUID) (*dto.ResourceResponse, error)
	ListResources(ctx context.Context, category string) (*dto.ResourceListResponse, error)
	UpdateResource(ctx context.Context, id uuid.UUID, req *dto.UpdateResourceRequest) (*dto.ResourceResponse, error)
	DeleteResource(ctx context.Context, id uuid.UUID) error
}

type resourceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	resourceRepo repository.ResourceRepository
}

func NewResourceUsecase(db *gorm.DB, log *logrus.Logger, resourceRepo repository.ResourceRepository) ResourceUsecase {
	return &resourceUsecase{
		db:           db,
		log:          log,
		resourceRepo: resourceRepo,
	}
}

func (u *resourceUsecase) CreateResource(ctx context.Context, req *dto.CreateResourceRequest) (*dto.ResourceResponse, error) {
	resource := &entity.EducationalResource{
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
	}

	if err := u.resourceRepo.Create(u.db.WithContext(ctx), resource); err != nil {
		u.log.Warnf("Failed to create resource: %+v", err)
		return nil, err
	}

	u.log.Infof("Resource created: id=%s, title=%q", resource.ID, resource.Title)
	return converter.ResourceToResponse(resource), nil
}

func (u *resourceUsecase) GetResource(ctx context.Context, id uuid.UUID) (*dto.ResourceResponse, error) {
	resource, err := u.resourceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find resource %s: %+v", id, err)
		return nil, err
	}
	if resource == nil {
		return nil, ErrResourceNotFound
	}
	return converter.ResourceToResponse(resource), nil
}

func (u *resourceUsecase) ListResources(ctx context.Context, category string) (*dto.ResourceListResponse, error) {
	resources, err := u.resourceRepo.FindAll(u.db.WithContext(ctx), category)
	if err != nil {
		u.log.Warnf("Failed to list resources: %+v", err)
		return nil, err
	}

	return &dto.ResourceListResponse{
		Resources: converter.ResourcesToResponses(resources),
		Total:     len(resources),
	}, nil
}

func (u *resourceUsecase) UpdateResource(ctx context.Context, id uuid.UUID, req *dto.UpdateResourceRequest) (*dto.ResourceResponse, error) {
	resource, err := u.resourceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find resource %s: %+v", id, err)
		return nil, err
	}
	if resource == nil {
		return nil, ErrResourceNotFound
	}

	if req.Title != "" {
		resource.Title = req.Title
	}
	if req.Category != "" {
		resource.Category = req.Category
	}
	if req.Content != "" {
		resource.Content = req.Content
	}

	if err := u.resourceRepo.Update(u.db.WithContext(ctx), resource); err != nil {
		u.log.Warnf("Failed to update resource %s: %+v", id, err)
		return nil, err
	}

	return converter.ResourceToResponse(resource), nil
}

func (u *resourceUsecase) DeleteResource(ctx context.Context, id uuid.UUID) error {
	affected, err := u.resourceRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete resource %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrResourceNotFound
	}

	u.log.Infof("Resource %s deleted", id)
	return nil
}
