package handlers

// AppHandlers holds every handler the application serves.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	ProfileHandler *ProfileHandler
	ItemHandler    *ItemHandler
	CartHandler    *CartHandler
}
