package repositories

import (
	"errors"

	"shopcart_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByUserID(userID string) (*models.Profile, error)
	Update(profile *models.Profile) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Update(profile *models.Profile) error {
	result := r.db.Model(&models.Profile{}).Where("id = ?", profile.ID).Updates(map[string]interface{}{
		"date_of_birth":   profile.DateOfBirth,
		"gender":          profile.Gender,
		"address_line1":   profile.AddressLine1,
		"address_line2":   profile.AddressLine2,
		"city":            profile.City,
		"state":           profile.State,
		"country":         profile.Country,
		"phone_number":    profile.PhoneNumber,
		"profile_picture": profile.ProfilePicture,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
