package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifelink/internal/converter"
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"
	"lifelink/internal/infrastructure/geocoding"
	"lifelink/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrTokenRevoked         = errors.New("token has been revoked")
	ErrLocationUnresolvable = errors.New("location could not be resolved to coordinates")
)

type AuthUsecase interface {
	RegisterDonor(ctx context.Context, req *dto.RegisterDonorRequest) (*dto.UserResponse, error)
	RegisterHospital(ctx context.Context, req *dto.RegisterHospitalRequest) (*dto.UserResponse, error)
	RegisterVolunteer(ctx context.Context, req *dto.RegisterVolunteerRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	geocoder    geocoding.Geocoder
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	geocoder geocoding.Geocoder,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		geocoder:    geocoder,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (u *authUsecase) RegisterDonor(ctx context.Context, req *dto.RegisterDonorRequest) (*dto.UserResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	// Donors must be locatable or matching cannot reach them, so a failed
	// geocode fails the whole registration.
	coords, err := u.resolveLocation(ctx, req.Location)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:              req.Email,
		Password:           string(hashedPassword),
		FullName:           req.FullName,
		PhoneNumber:        req.PhoneNumber,
		RoleID:             entity.RoleIDDonor,
		BloodType:          entity.NormalizeBloodType(req.BloodType),
		DateOfBirth:        &dob,
		Location:           req.Location,
		Lat:                &coords.Lat,
		Lon:                &coords.Lon,
		AvailabilityStatus: entity.AvailabilityAvailable,
	}

	if err := u.createUser(ctx, user); err != nil {
		return nil, err
	}

	u.log.Infof("Donor registered: id=%s, blood_type=%s", user.ID, user.BloodType)
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) RegisterHospital(ctx context.Context, req *dto.RegisterHospitalRequest) (*dto.UserResponse, error) {
	coords, err := u.resolveLocation(ctx, req.Location)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:       req.Email,
		Password:    string(hashedPassword),
		FullName:    req.HospitalName,
		PhoneNumber: req.PhoneNumber,
		RoleID:      entity.RoleIDHospital,
		Location:    req.Location,
		Lat:         &coords.Lat,
		Lon:         &coords.Lon,
	}

	if err := u.createUser(ctx, user); err != nil {
		return nil, err
	}

	u.log.Infof("Hospital registered: id=%s, location=%q", user.ID, user.Location)
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) RegisterVolunteer(ctx context.Context, req *dto.RegisterVolunteerRequest) (*dto.UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:             req.Email,
		Password:          string(hashedPassword),
		FullName:          req.FullName,
		PhoneNumber:       req.PhoneNumber,
		RoleID:            entity.RoleIDVolunteer,
		ApplicationStatus: entity.ApplicationNotApplied,
	}

	if err := u.createUser(ctx, user); err != nil {
		return nil, err
	}

	u.log.Infof("Volunteer registered: id=%s", user.ID)
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) resolveLocation(ctx context.Context, location string) (*geocoding.Coordinates, error) {
	coords, err := u.geocoder.Geocode(ctx, location)
	if err != nil {
		if errors.Is(err, geocoding.ErrLocationNotFound) {
			return nil, ErrLocationUnresolvable
		}
		u.log.Warnf("Geocoding failed for %q: %+v", location, err)
		return nil, err
	}
	return coords, nil
}

func (u *authUsecase) createUser(ctx context.Context, user *entity.User) error {
	if err := u.userRepo.Create(u.db.WithContext(ctx), user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, user.ID, user.Email, user.RoleID)
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, email string, roleID int) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email, roleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email, roleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	accessPattern := fmt.Sprintf("access_token:*:%s", accessTokenID)
	refreshPattern := fmt.Sprintf("refresh_token:*:%s", refreshTokenID)

	for _, pattern := range []string{accessPattern, refreshPattern} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to get token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: the presented refresh token is single use
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Email, claims.RoleID)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}
