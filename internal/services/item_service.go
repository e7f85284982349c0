package services

import (
	"shopcart_backend/internal/models"
	"shopcart_backend/internal/repositories"
	"shopcart_backend/internal/services/dto"
	"shopcart_backend/pkg/apperrors"
)

// ItemService is owner-scoped CRUD over catalog items. Staff accounts see
// every item; everyone else only their own.
type ItemService interface {
	List(userID string, isStaff bool) ([]models.Item, error)
	Create(userID string, req *dto.ItemRequest) (*models.Item, error)
	Get(userID, itemID string) (*models.Item, error)
	Update(userID, itemID string, req *dto.ItemRequest) (*models.Item, error)
	Patch(userID, itemID string, req *dto.ItemPatchRequest) (*models.Item, error)
	Delete(userID, itemID string) error
}

type ItemServiceImpl struct {
	itemRepo repositories.ItemRepository
}

func NewItemService(itemRepo repositories.ItemRepository) ItemService {
	return &ItemServiceImpl{itemRepo: itemRepo}
}

func (s *ItemServiceImpl) List(userID string, isStaff bool) ([]models.Item, error) {
	var (
		items []models.Item
		err   error
	)

	if isStaff {
		items, err = s.itemRepo.FindAll()
	} else {
		items, err = s.itemRepo.FindByOwner(userID)
	}

	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ItemServiceImpl) Create(userID string, req *dto.ItemRequest) (*models.Item, error) {
	item := &models.Item{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     userID,
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

func (s *ItemServiceImpl) Get(userID, itemID string) (*models.Item, error) {
	return s.ownedItem(userID, itemID)
}

func (s *ItemServiceImpl) Update(userID, itemID string, req *dto.ItemRequest) (*models.Item, error) {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	item.Title = req.Title
	item.Description = req.Description

	if err := s.itemRepo.Update(item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

func (s *ItemServiceImpl) Patch(userID, itemID string, req *dto.ItemPatchRequest) (*models.Item, error) {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	if err := s.itemRepo.Update(item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

func (s *ItemServiceImpl) Delete(userID, itemID string) error {
	if _, err := s.ownedItem(userID, itemID); err != nil {
		return err
	}

	if err := s.itemRepo.Delete(itemID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ownedItem loads an item and enforces the owner-only rule.
func (s *ItemServiceImpl) ownedItem(userID, itemID string) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if item.OwnerID != userID {
		return nil, apperrors.ErrNotResourceOwner
	}
	return item, nil
}
