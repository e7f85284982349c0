package services

import (
	"errors"
	"time"

	"shopcart_backend/internal/email"
	"shopcart_backend/internal/models"
	"shopcart_backend/internal/repositories"

	"github.com/google/uuid"
)

// memoryStore backs the fake repositories. One store is shared by all
// fakes in a test so cross-repository effects (token consumption
// activating the user, cascade deletes) behave like the real transactions.
type memoryStore struct {
	users     map[string]*models.User                   // by user ID
	profiles  map[string]*models.Profile                // by user ID
	tokens    map[string]*models.EmailVerificationToken // by token value
	items     map[string]*models.Item                   // by item ID
	cartItems map[string]*models.CartItem               // by cart item ID
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:     make(map[string]*models.User),
		profiles:  make(map[string]*models.Profile),
		tokens:    make(map[string]*models.EmailVerificationToken),
		items:     make(map[string]*models.Item),
		cartItems: make(map[string]*models.CartItem),
	}
}

func (m *memoryStore) userByEmail(emailAddr string) *models.User {
	for _, u := range m.users {
		if u.Email == emailAddr {
			return u
		}
	}
	return nil
}

func (m *memoryStore) tokenByUserID(userID string) *models.EmailVerificationToken {
	for _, t := range m.tokens {
		if t.UserID == userID {
			return t
		}
	}
	return nil
}

// --- UserRepository fake ---

type fakeUserRepo struct {
	store *memoryStore
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	copied.Profile = r.store.profiles[id]
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(emailAddr string) (*models.User, error) {
	user := r.store.userByEmail(emailAddr)
	if user == nil {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	copied.Profile = r.store.profiles[user.ID]
	return &copied, nil
}

func (r *fakeUserRepo) CreateWithProfile(user *models.User, profile *models.Profile, token *models.EmailVerificationToken) error {
	if r.store.userByEmail(user.Email) != nil {
		return repositories.ErrUserAlreadyExists
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()

	profile.ID = uuid.NewString()
	profile.UserID = user.ID

	token.ID = uuid.NewString()
	token.UserID = user.ID
	token.CreatedAt = time.Now()

	r.store.users[user.ID] = user
	r.store.profiles[user.ID] = profile
	r.store.tokens[token.Token] = token
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	stored := *user
	stored.Profile = nil
	r.store.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) UpdateWithProfile(user *models.User, profile *models.Profile) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	if other := r.store.userByEmail(user.Email); other != nil && other.ID != user.ID {
		return repositories.ErrUserAlreadyExists
	}
	stored := *user
	storedProfile := *profile
	stored.Profile = nil
	r.store.users[user.ID] = &stored
	r.store.profiles[user.ID] = &storedProfile
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID, passwordHash string) error {
	user, ok := r.store.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	if _, ok := r.store.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	for id, ci := range r.store.cartItems {
		if ci.UserID == userID {
			delete(r.store.cartItems, id)
		}
	}
	for id, item := range r.store.items {
		if item.OwnerID == userID {
			delete(r.store.items, id)
		}
	}
	if t := r.store.tokenByUserID(userID); t != nil {
		delete(r.store.tokens, t.Token)
	}
	delete(r.store.profiles, userID)
	delete(r.store.users, userID)
	return nil
}

// --- VerificationTokenRepository fake ---

type fakeTokenRepo struct {
	store *memoryStore
}

func (r *fakeTokenRepo) FindByToken(token string) (*models.EmailVerificationToken, error) {
	t, ok := r.store.tokens[token]
	if !ok {
		return nil, repositories.ErrTokenNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTokenRepo) FindByUserID(userID string) (*models.EmailVerificationToken, error) {
	t := r.store.tokenByUserID(userID)
	if t == nil {
		return nil, repositories.ErrTokenNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTokenRepo) Consume(token *models.EmailVerificationToken) error {
	user, ok := r.store.users[token.UserID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.IsActive = true
	delete(r.store.tokens, token.Token)
	return nil
}

func (r *fakeTokenRepo) Regenerate(token *models.EmailVerificationToken) error {
	stored := r.store.tokenByUserID(token.UserID)
	if stored == nil {
		return repositories.ErrTokenNotFound
	}
	delete(r.store.tokens, stored.Token)
	token.Regenerate(time.Now())
	copied := *token
	r.store.tokens[token.Token] = &copied
	return nil
}

// --- ProfileRepository fake ---

type fakeProfileRepo struct {
	store *memoryStore
}

func (r *fakeProfileRepo) FindByUserID(userID string) (*models.Profile, error) {
	p, ok := r.store.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProfileRepo) Update(profile *models.Profile) error {
	if _, ok := r.store.profiles[profile.UserID]; !ok {
		return repositories.ErrProfileNotFound
	}
	copied := *profile
	r.store.profiles[profile.UserID] = &copied
	return nil
}

// --- ItemRepository fake ---

type fakeItemRepo struct {
	store *memoryStore
}

func (r *fakeItemRepo) Create(item *models.Item) error {
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now()
	copied := *item
	r.store.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) FindByID(id string) (*models.Item, error) {
	item, ok := r.store.items[id]
	if !ok {
		return nil, repositories.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeItemRepo) FindByOwner(ownerID string) ([]models.Item, error) {
	var items []models.Item
	for _, item := range r.store.items {
		if item.OwnerID == ownerID {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (r *fakeItemRepo) FindAll() ([]models.Item, error) {
	var items []models.Item
	for _, item := range r.store.items {
		items = append(items, *item)
	}
	return items, nil
}

func (r *fakeItemRepo) Update(item *models.Item) error {
	if _, ok := r.store.items[item.ID]; !ok {
		return repositories.ErrItemNotFound
	}
	copied := *item
	r.store.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	if _, ok := r.store.items[id]; !ok {
		return repositories.ErrItemNotFound
	}
	for ciID, ci := range r.store.cartItems {
		if ci.ItemID == id {
			delete(r.store.cartItems, ciID)
		}
	}
	delete(r.store.items, id)
	return nil
}

// --- CartRepository fake ---

type fakeCartRepo struct {
	store *memoryStore
}

func (r *fakeCartRepo) Create(cartItem *models.CartItem) error {
	for _, existing := range r.store.cartItems {
		if existing.UserID == cartItem.UserID && existing.ItemID == cartItem.ItemID {
			return repositories.ErrCartItemExists
		}
	}
	cartItem.ID = uuid.NewString()
	cartItem.CreatedAt = time.Now()
	copied := *cartItem
	copied.Item = nil
	r.store.cartItems[cartItem.ID] = &copied
	return nil
}

func (r *fakeCartRepo) FindByID(id string) (*models.CartItem, error) {
	ci, ok := r.store.cartItems[id]
	if !ok {
		return nil, repositories.ErrCartItemNotFound
	}
	copied := *ci
	copied.Item = r.store.items[ci.ItemID]
	return &copied, nil
}

func (r *fakeCartRepo) FindByUser(userID string) ([]models.CartItem, error) {
	var cartItems []models.CartItem
	for _, ci := range r.store.cartItems {
		if ci.UserID == userID {
			copied := *ci
			copied.Item = r.store.items[ci.ItemID]
			cartItems = append(cartItems, copied)
		}
	}
	return cartItems, nil
}

func (r *fakeCartRepo) Update(cartItem *models.CartItem) error {
	stored, ok := r.store.cartItems[cartItem.ID]
	if !ok {
		return repositories.ErrCartItemNotFound
	}
	stored.Quantity = cartItem.Quantity
	return nil
}

func (r *fakeCartRepo) Delete(id string) error {
	if _, ok := r.store.cartItems[id]; !ok {
		return repositories.ErrCartItemNotFound
	}
	delete(r.store.cartItems, id)
	return nil
}

// --- email.Provider fake ---

type sentMail struct {
	To   string
	Link string
	Kind string // "verification" or "password_reset"
}

// recordingEmailProvider captures outgoing mail instead of sending it.
// Set failNext to simulate an SMTP outage.
type recordingEmailProvider struct {
	sent     []sentMail
	failNext bool
}

func (p *recordingEmailProvider) Send(msg *email.Email) error {
	if p.failNext {
		p.failNext = false
		return errors.New("smtp: connection refused")
	}
	return nil
}

func (p *recordingEmailProvider) SendVerification(to, link string) error {
	if p.failNext {
		p.failNext = false
		return errors.New("smtp: connection refused")
	}
	p.sent = append(p.sent, sentMail{To: to, Link: link, Kind: "verification"})
	return nil
}

func (p *recordingEmailProvider) SendPasswordReset(to, link string) error {
	if p.failNext {
		p.failNext = false
		return errors.New("smtp: connection refused")
	}
	p.sent = append(p.sent, sentMail{To: to, Link: link, Kind: "password_reset"})
	return nil
}

func (p *recordingEmailProvider) SendTemplate(to []string, subject, templateName string, data email.TemplateData) error {
	if p.failNext {
		p.failNext = false
		return errors.New("smtp: connection refused")
	}
	return nil
}

func (p *recordingEmailProvider) Validate() error { return nil }

func (p *recordingEmailProvider) lastMail() *sentMail {
	if len(p.sent) == 0 {
		return nil
	}
	return &p.sent[len(p.sent)-1]
}
