package services

import (
	"shopcart_backend/internal/models"
	"shopcart_backend/internal/repositories"
	"shopcart_backend/internal/services/dto"
	"shopcart_backend/pkg/apperrors"
)

// CartService manages per-user cart rows. Every operation is scoped to the
// calling user; a cart row belonging to someone else behaves like a 403.
type CartService interface {
	List(userID string) ([]models.CartItem, error)
	Add(userID string, req *dto.CartItemRequest) (*models.CartItem, error)
	Get(userID, cartItemID string) (*models.CartItem, error)
	UpdateQuantity(userID, cartItemID string, req *dto.CartItemUpdateRequest) (*models.CartItem, error)
	Remove(userID, cartItemID string) error
}

type CartServiceImpl struct {
	cartRepo repositories.CartRepository
	itemRepo repositories.ItemRepository
}

func NewCartService(cartRepo repositories.CartRepository, itemRepo repositories.ItemRepository) CartService {
	return &CartServiceImpl{cartRepo: cartRepo, itemRepo: itemRepo}
}

func (s *CartServiceImpl) List(userID string) ([]models.CartItem, error) {
	cartItems, err := s.cartRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cartItems, nil
}

func (s *CartServiceImpl) Add(userID string, req *dto.CartItemRequest) (*models.CartItem, error) {
	item, err := s.itemRepo.FindByID(req.ItemID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	cartItem := &models.CartItem{
		UserID:   userID,
		ItemID:   item.ID,
		Quantity: quantity,
	}

	if err := s.cartRepo.Create(cartItem); err != nil {
		if apperrors.Is(err, repositories.ErrCartItemExists) {
			return nil, apperrors.ErrCartItemExists
		}
		return nil, apperrors.InternalError(err)
	}

	cartItem.Item = item
	return cartItem, nil
}

func (s *CartServiceImpl) Get(userID, cartItemID string) (*models.CartItem, error) {
	return s.ownedCartItem(userID, cartItemID)
}

func (s *CartServiceImpl) UpdateQuantity(userID, cartItemID string, req *dto.CartItemUpdateRequest) (*models.CartItem, error) {
	cartItem, err := s.ownedCartItem(userID, cartItemID)
	if err != nil {
		return nil, err
	}

	cartItem.Quantity = req.Quantity
	if err := s.cartRepo.Update(cartItem); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cartItem, nil
}

func (s *CartServiceImpl) Remove(userID, cartItemID string) error {
	if _, err := s.ownedCartItem(userID, cartItemID); err != nil {
		return err
	}

	if err := s.cartRepo.Delete(cartItemID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CartServiceImpl) ownedCartItem(userID, cartItemID string) (*models.CartItem, error) {
	cartItem, err := s.cartRepo.FindByID(cartItemID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCartItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if cartItem.UserID != userID {
		return nil, apperrors.ErrNotResourceOwner
	}
	return cartItem, nil
}
