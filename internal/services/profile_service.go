package services

import (
	"shopcart_backend/internal/models"
	"shopcart_backend/internal/repositories"
	"shopcart_backend/internal/services/dto"
	"shopcart_backend/pkg/apperrors"
)

type ProfileService interface {
	GetProfile(userID string) (*dto.ProfileResponse, error)
	EditProfile(userID string, req *dto.EditProfileRequest) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository

	// defaultPicture is substituted in responses when the profile has no
	// picture set. Injected at construction, not read from a global.
	defaultPicture string
}

func NewProfileService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository, defaultPicture string) ProfileService {
	return &ProfileServiceImpl{
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		defaultPicture: defaultPicture,
	}
}

// GetProfile returns the full profile view for the dashboard and profile
// endpoints.
func (s *ProfileServiceImpl) GetProfile(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	profile := user.Profile
	if profile == nil {
		p, err := s.profileRepo.FindByUserID(userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile = p
	}

	return s.buildProfileResponse(user, profile), nil
}

// EditProfile applies a sparse update over the allow-listed profile fields.
// First/last name updates land on the account row in the same transaction.
func (s *ProfileServiceImpl) EditProfile(userID string, req *dto.EditProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return nil, apperrors.ValidationError(map[string]string{
				"date_of_birth": "Must be a valid date in YYYY-MM-DD format",
			})
		}
		profile.DateOfBirth = dob
	}
	if req.Gender != nil {
		profile.Gender = models.Gender(*req.Gender)
	}
	if req.AddressLine1 != nil {
		profile.AddressLine1 = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		profile.AddressLine2 = *req.AddressLine2
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.State != nil {
		profile.State = *req.State
	}
	if req.Country != nil {
		profile.Country = *req.Country
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.ProfilePicture != nil {
		profile.ProfilePicture = *req.ProfilePicture
	}

	if err := s.userRepo.UpdateWithProfile(user, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildProfileResponse(user, profile), nil
}

func (s *ProfileServiceImpl) buildProfileResponse(user *models.User, profile *models.Profile) *dto.ProfileResponse {
	resp := &dto.ProfileResponse{
		UserID:         user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		FullName:       user.FullName(),
		PhoneNumber:    profile.PhoneNumber,
		ProfilePicture: profile.ProfilePicture,
		Gender:         string(profile.Gender),
		AddressLine1:   profile.AddressLine1,
		AddressLine2:   profile.AddressLine2,
		City:           profile.City,
		State:          profile.State,
		Country:        profile.Country,
	}

	if profile.DateOfBirth != nil {
		resp.DateOfBirth = profile.DateOfBirth.Format("2006-01-02")
	}
	if resp.ProfilePicture == "" {
		resp.ProfilePicture = s.defaultPicture
	}

	return resp
}
