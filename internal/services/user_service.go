package services

import (
	"shopcart_backend/internal/auth"
	"shopcart_backend/internal/models"
	"shopcart_backend/internal/repositories"
	"shopcart_backend/internal/services/dto"
	"shopcart_backend/pkg/apperrors"
)

type UserService interface {
	CurrentUser(userID string) (*dto.UserResponse, error)
	UpdateUser(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	ChangePassword(userID, currentPassword, newPassword string) error
	DeleteAccount(userID string) error
}

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewUserService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// CurrentUser returns the account + profile summary.
func (s *UserServiceImpl) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return buildUserResponse(user), nil
}

// UpdateUser applies a sparse update over the allow-listed account fields
// (first/last name, email, password) and the date-of-birth/gender profile
// fields. Account and profile changes commit in one transaction.
func (s *UserServiceImpl) UpdateUser(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
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
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			return nil, apperrors.ErrWeakPassword
		}
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hashed
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

	if err := s.userRepo.UpdateWithProfile(user, profile); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	user.Profile = profile
	return buildUserResponse(user), nil
}

// ChangePassword replaces the password after verifying the current one.
func (s *UserServiceImpl) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(userID, hashed); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteAccount removes the account immediately and irreversibly,
// cascading to the profile, pending verification token, items and cart.
func (s *UserServiceImpl) DeleteAccount(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}

	if user.Profile != nil {
		if user.Profile.DateOfBirth != nil {
			resp.Profile.DateOfBirth = user.Profile.DateOfBirth.Format("2006-01-02")
		}
		resp.Profile.Gender = string(user.Profile.Gender)
	}

	return resp
}
