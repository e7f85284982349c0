package repositories

import (
	"errors"

	"shopcart_backend/internal/models"

	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("item not found")

type ItemRepository interface {
	Create(item *models.Item) error
	FindByID(id string) (*models.Item, error)
	FindByOwner(ownerID string) ([]models.Item, error)
	FindAll() ([]models.Item, error)
	Update(item *models.Item) error
	Delete(id string) error
}

type ItemRepositoryImpl struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl{db: db}
}

func (r *ItemRepositoryImpl) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

func (r *ItemRepositoryImpl) FindByID(id string) (*models.Item, error) {
	var item models.Item
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepositoryImpl) FindByOwner(ownerID string) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ItemRepositoryImpl) FindAll() ([]models.Item, error) {
	var items []models.Item
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ItemRepositoryImpl) Update(item *models.Item) error {
	result := r.db.Model(&models.Item{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"title":       item.Title,
		"description": item.Description,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *ItemRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Cart rows referencing the item go with it.
		if err := tx.Where("item_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Item{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrItemNotFound
		}
		return nil
	})
}
