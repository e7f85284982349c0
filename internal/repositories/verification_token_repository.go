package repositories

import (
	"errors"
	"time"

	"shopcart_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTokenNotFound = errors.New("verification token not found")

type VerificationTokenRepository interface {
	FindByToken(token string) (*models.EmailVerificationToken, error)
	FindByUserID(userID string) (*models.EmailVerificationToken, error)

	// Consume activates the token's account and deletes the token as one
	// transaction. A consumed token can never be replayed.
	Consume(token *models.EmailVerificationToken) error

	// Regenerate replaces the token value and restarts its validity window.
	Regenerate(token *models.EmailVerificationToken) error
}

type VerificationTokenRepositoryImpl struct {
	db *gorm.DB
}

func NewVerificationTokenRepository(db *gorm.DB) VerificationTokenRepository {
	return &VerificationTokenRepositoryImpl{db: db}
}

func (r *VerificationTokenRepositoryImpl) FindByToken(token string) (*models.EmailVerificationToken, error) {
	var t models.EmailVerificationToken
	err := r.db.First(&t, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *VerificationTokenRepositoryImpl) FindByUserID(userID string) (*models.EmailVerificationToken, error) {
	var t models.EmailVerificationToken
	err := r.db.First(&t, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *VerificationTokenRepositoryImpl) Consume(token *models.EmailVerificationToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).Where("id = ?", token.UserID).
			Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		return tx.Where("id = ?", token.ID).Delete(&models.EmailVerificationToken{}).Error
	})
}

func (r *VerificationTokenRepositoryImpl) Regenerate(token *models.EmailVerificationToken) error {
	token.Regenerate(time.Now())

	result := r.db.Model(&models.EmailVerificationToken{}).Where("id = ?", token.ID).Updates(map[string]interface{}{
		"token":      token.Token,
		"created_at": token.CreatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenNotFound
	}
	return nil
}
