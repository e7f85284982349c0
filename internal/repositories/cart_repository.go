package repositories

import (
	"errors"

	"shopcart_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartItemExists   = errors.New("cart item already exists")
)

type CartRepository interface {
	// Create inserts a cart row; the unique (user_id, item_id) index maps
	// to ErrCartItemExists.
	Create(cartItem *models.CartItem) error
	FindByID(id string) (*models.CartItem, error)
	FindByUser(userID string) ([]models.CartItem, error)
	Update(cartItem *models.CartItem) error
	Delete(id string) error
}

type CartRepositoryImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &CartRepositoryImpl{db: db}
}

func (r *CartRepositoryImpl) Create(cartItem *models.CartItem) error {
	if err := r.db.Create(cartItem).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCartItemExists
		}
		return err
	}
	return nil
}

func (r *CartRepositoryImpl) FindByID(id string) (*models.CartItem, error) {
	var cartItem models.CartItem
	err := r.db.Preload("Item").First(&cartItem, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	return &cartItem, nil
}

func (r *CartRepositoryImpl) FindByUser(userID string) ([]models.CartItem, error) {
	var cartItems []models.CartItem
	err := r.db.Preload("Item").Where("user_id = ?", userID).Order("created_at DESC").Find(&cartItems).Error
	return cartItems, err
}

func (r *CartRepositoryImpl) Update(cartItem *models.CartItem) error {
	result := r.db.Model(&models.CartItem{}).Where("id = ?", cartItem.ID).
		Update("quantity", cartItem.Quantity)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}
