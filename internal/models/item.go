package models

// Item is a seller-owned catalog entry.
type Item struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	OwnerID     string `gorm:"type:uuid;not null;index" json:"owner_id"`
}

// CartItem links a user to an item with a quantity. The (user, item) pair
// is unique so the same item cannot appear in a cart twice.
type CartItem struct {
	BaseModel
	UserID   string `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_item" json:"user_id"`
	ItemID   string `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_item" json:"item_id"`
	Quantity int    `gorm:"default:1;not null" json:"quantity"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}
