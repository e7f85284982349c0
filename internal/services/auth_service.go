package services

import (
	"fmt"
	"time"

	"shopcart_backend/internal/auth"
	"shopcart_backend/internal/email"
	"shopcart_backend/internal/models"
	"shopcart_backend/internal/repositories"
	"shopcart_backend/internal/services/dto"
	"shopcart_backend/pkg/apperrors"
)

// AuthService drives the account lifecycle state machine:
// registration -> email verification -> authentication -> password reset.
type AuthService interface {
	Register(req *dto.RegisterRequest) error
	VerifyEmail(token string) error
	ResendVerification(emailAddr string) error
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(refreshToken string) (*dto.LoginResponse, error)
	RequestPasswordReset(emailAddr string) error
	ConfirmPasswordReset(uidb64, token, newPassword string) error
}

// AuthConfig is the slice of application configuration the service needs.
// Passed in explicitly at construction; the service reads no globals.
type AuthConfig struct {
	ServerBaseURL string // verification links point back at this API
	FrontendURL   string // reset links point at the SPA
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokenRepo     repositories.VerificationTokenRepository
	emailProvider email.Provider
	tokenManager  *auth.TokenManager
	resetTokens   *auth.ResetTokenGenerator
	cfg           AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.VerificationTokenRepository,
	emailProvider email.Provider,
	tokenManager *auth.TokenManager,
	resetTokens *auth.ResetTokenGenerator,
	cfg AuthConfig,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		emailProvider: emailProvider,
		tokenManager:  tokenManager,
		resetTokens:   resetTokens,
		cfg:           cfg,
	}
}

// Register creates an inactive account, its profile and a fresh
// verification token in one transaction, then sends the verification
// email. Mail delivery failure fails the whole call.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	// The validator already enforces eqfield; this guards direct callers.
	if req.Password != req.ConfirmPassword {
		return apperrors.ValidationError(map[string]string{
			"confirm_password": "Passwords do not match",
		})
	}

	profile, err := buildProfile(req)
	if err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     false,
	}
	token := models.NewVerificationToken("")

	if err := s.userRepo.CreateWithProfile(user, profile, token); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendVerification(user.Email, s.verificationLink(token.Token)); err != nil {
		return apperrors.ErrEmailDelivery(err)
	}

	return nil
}

// VerifyEmail consumes a verification token: the account becomes active and
// the token is deleted, so a replay always fails with TOKEN_NOT_FOUND.
// Expired tokens are rejected but kept.
func (s *AuthServiceImpl) VerifyEmail(token string) error {
	t, err := s.tokenRepo.FindByToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			return apperrors.ErrTokenNotFound
		}
		return apperrors.InternalError(err)
	}

	if t.IsExpired(time.Now()) {
		return apperrors.ErrTokenExpired
	}

	if err := s.tokenRepo.Consume(t); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ResendVerification regenerates the pending token (new value, new window)
// and re-sends the verification email.
func (s *AuthServiceImpl) ResendVerification(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ValidationMessage("No user is associated with this email address.")
		}
		return apperrors.InternalError(err)
	}

	if user.IsActive {
		return apperrors.ValidationMessage("Email is already verified.")
	}

	token, err := s.tokenRepo.FindByUserID(user.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			return apperrors.ErrTokenNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.tokenRepo.Regenerate(token); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendVerification(user.Email, s.verificationLink(token.Token)); err != nil {
		return apperrors.ErrEmailDelivery(err)
	}
	return nil
}

// Login authenticates by email and password. Unknown email and wrong
// password return the identical error so the API does not reveal which
// emails exist. A correct password on an unverified account returns 403
// and never mints a credential.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserNotVerified
	}

	return s.buildLoginResponse(user)
}

// Refresh mints a new pair from a valid refresh token. Stateless: the
// token is verified by signature, expiry and type only, but the account
// must still exist and be active.
func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.LoginResponse, error) {
	claims, err := s.tokenManager.ParseRefresh(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserNotVerified
	}

	return s.buildLoginResponse(user)
}

// RequestPasswordReset derives a reset credential from current account
// state and emails the reset link. An unknown email is an explicit 400 -
// unlike Login this endpoint does disclose account existence, a tradeoff
// inherited from the existing API contract.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ValidationMessage("No user is associated with this email address.")
		}
		return apperrors.InternalError(err)
	}

	token := s.resetTokens.MakeToken(user.ID, user.PasswordHash)
	uidb64 := auth.EncodeUID(user.ID)
	resetLink := fmt.Sprintf("%s/resetpassword?uidb64=%s&token=%s", s.cfg.FrontendURL, uidb64, token)

	if err := s.emailProvider.SendPasswordReset(user.Email, resetLink); err != nil {
		return apperrors.ErrEmailDelivery(err)
	}
	return nil
}

// ConfirmPasswordReset validates the derived credential against the
// account's current password hash and replaces the hash. Tokens issued
// before a password change fail here by construction. Existing access and
// refresh tokens stay valid.
func (s *AuthServiceImpl) ConfirmPasswordReset(uidb64, token, newPassword string) error {
	userID, err := auth.DecodeUID(uidb64)
	if err != nil {
		return apperrors.ValidationMessage("Invalid token or user ID")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ValidationMessage("Invalid token or user ID")
		}
		return apperrors.InternalError(err)
	}

	if !s.resetTokens.CheckToken(user.ID, user.PasswordHash, token) {
		return apperrors.ValidationMessage("Invalid token")
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(user.ID, hashedPassword); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Helper functions ---

func (s *AuthServiceImpl) buildLoginResponse(user *models.User) (*dto.LoginResponse, error) {
	pair, err := s.tokenManager.GeneratePair(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User: dto.UserSummary{
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}, nil
}

func (s *AuthServiceImpl) verificationLink(token string) string {
	return fmt.Sprintf("%s/api/v1/auth/verify-email/%s", s.cfg.ServerBaseURL, token)
}

func buildProfile(req *dto.RegisterRequest) (*models.Profile, error) {
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{
			"date_of_birth": "Must be a valid date in YYYY-MM-DD format",
		})
	}

	return &models.Profile{
		DateOfBirth:    dob,
		Gender:         models.Gender(req.Gender),
		AddressLine1:   req.AddressLine1,
		AddressLine2:   req.AddressLine2,
		City:           req.City,
		State:          req.State,
		Country:        req.Country,
		PhoneNumber:    req.PhoneNumber,
		ProfilePicture: req.ProfilePicture,
	}, nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
