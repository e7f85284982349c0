package dto

type ItemRequest struct {
	Title       string `json:"title" binding:"required" validate:"required,max=255"`
	Description string `json:"description"`
}

// ItemPatchRequest is the sparse item update.
type ItemPatchRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
}

type CartItemRequest struct {
	ItemID   string `json:"item_id" binding:"required" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
}

type CartItemUpdateRequest struct {
	Quantity int `json:"quantity" binding:"required" validate:"required,min=1"`
}
