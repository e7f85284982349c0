package handlers

import (
	"net/http"

	"shopcart_backend/internal/services"
	"shopcart_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	*BaseHandler
	cartService services.CartService
}

func NewCartHandler(base *BaseHandler, cartService services.CartService) *CartHandler {
	return &CartHandler{
		BaseHandler: base,
		cartService: cartService,
	}
}

func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart-items")
	{
		cart.GET("", h.ListCartItems)
		cart.POST("", h.AddCartItem)
		cart.GET("/:id", h.GetCartItem)
		cart.PUT("/:id", h.UpdateCartItem)
		cart.PATCH("/:id", h.UpdateCartItem)
		cart.DELETE("/:id", h.RemoveCartItem)
	}
}

func (h *CartHandler) ListCartItems(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	cartItems, err := h.cartService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartItems)
}

// AddCartItem godoc
// @Summary Add an item to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CartItemRequest true "Item and quantity"
// @Success 201 {object} models.CartItem
// @Failure 400 {object} apperrors.ErrorResponse "Item already in cart"
// @Failure 404 {object} apperrors.ErrorResponse "Item not found"
// @Router /cart-items [post]
func (h *CartHandler) AddCartItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CartItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	cartItem, err := h.cartService.Add(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cartItem)
}

func (h *CartHandler) GetCartItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	cartItemID, ok := h.requireIDParam(c)
	if !ok {
		return
	}

	cartItem, err := h.cartService.Get(userID, cartItemID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartItem)
}

func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	cartItemID, ok := h.requireIDParam(c)
	if !ok {
		return
	}

	var req dto.CartItemUpdateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	cartItem, err := h.cartService.UpdateQuantity(userID, cartItemID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartItem)
}

func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	cartItemID, ok := h.requireIDParam(c)
	if !ok {
		return
	}

	if err := h.cartService.Remove(userID, cartItemID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
