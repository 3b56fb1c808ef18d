// Package cart owns the authoritative in-memory view of each user's cart
// and serializes every mutation through it. All writes go "fire, then
// fully reload": after a successful store mutation the accessor re-queries
// the user's rows instead of patching the snapshot locally.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shoplane/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSignInRequired  = errors.New("sign in required")
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotFound    = errors.New("cart item not found")
	ErrNotEnoughStock  = errors.New("not enough stock")
)

// Accessor mediates all cart reads and writes for all users. Mutations for
// the same user are serialized through a per-user lock so two rapid adds
// cannot race duplicate rows; the composite unique index on cart_items is
// the backstop for writers on other instances.
type Accessor struct {
	db       *gorm.DB
	notifier Notifier

	mu        sync.Mutex
	locks     map[string]*sync.Mutex
	snapshots map[string][]models.CartItem
}

func NewAccessor(db *gorm.DB, notifier Notifier) *Accessor {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Accessor{
		db:        db,
		notifier:  notifier,
		locks:     make(map[string]*sync.Mutex),
		snapshots: make(map[string][]models.CartItem),
	}
}

func (a *Accessor) userLock(userID string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()
	l, ok := a.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		a.locks[userID] = l
	}
	return l
}

func (a *Accessor) setSnapshot(userID string, items []models.CartItem) {
	a.mu.Lock()
	a.snapshots[userID] = items
	a.mu.Unlock()
}

// Load replaces the user's snapshot with the current store rows joined
// with their products. An empty userID resets to an empty cart without
// touching the store.
func (a *Accessor) Load(ctx context.Context, userID string) ([]models.CartItem, error) {
	if userID == "" {
		a.setSnapshot("", nil)
		return nil, nil
	}
	l := a.userLock(userID)
	l.Lock()
	defer l.Unlock()
	return a.reload(ctx, userID)
}

// reload is Load without the user lock; callers must hold it.
func (a *Accessor) reload(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := a.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	if err != nil {
		a.notifier.Notify(Notice{Level: LevelError, Title: "Error loading cart", Description: err.Error()})
		return nil, err
	}
	a.setSnapshot(userID, items)
	return items, nil
}

// Add puts one unit of the product into the user's cart: an existing row
// gets its quantity incremented, otherwise a new row with quantity 1 is
// inserted. Returns whether an existing row was updated.
func (a *Accessor) Add(ctx context.Context, userID string, productID uint) (updated bool, err error) {
	if userID == "" {
		a.notifier.Notify(Notice{
			Level:       LevelError,
			Title:       "Please sign in",
			Description: "You need to be signed in to add items to cart",
		})
		return false, ErrSignInRequired
	}

	l := a.userLock(userID)
	l.Lock()
	defer l.Unlock()

	var product models.Product
	if err := a.db.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			a.notifier.Notify(Notice{Level: LevelError, Title: "Error", Description: "Product does not exist"})
			return false, ErrProductNotFound
		}
		a.notifier.Notify(Notice{Level: LevelError, Title: "Error", Description: err.Error()})
		return false, err
	}

	var existing models.CartItem
	findErr := a.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&existing).Error

	switch {
	case findErr == nil:
		if existing.Quantity+1 > product.Stock {
			a.notifyStock(product)
			return false, ErrNotEnoughStock
		}
		err := a.db.WithContext(ctx).Model(&models.CartItem{}).
			Where("id = ?", existing.ID).
			Update("quantity", existing.Quantity+1).Error
		if err != nil {
			a.notifier.Notify(Notice{Level: LevelError, Title: "Error", Description: err.Error()})
			return false, err
		}
		a.reload(ctx, userID)
		a.notifier.Notify(Notice{Level: LevelSuccess, Title: "Updated cart", Description: "Item quantity increased"})
		return true, nil

	case errors.Is(findErr, gorm.ErrRecordNotFound):
		if product.Stock < 1 {
			a.notifyStock(product)
			return false, ErrNotEnoughStock
		}
		item := models.CartItem{UserID: userID, ProductID: productID, Quantity: 1}
		err := a.db.WithContext(ctx).Omit("Product").
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("quantity + 1")}),
			}).
			Create(&item).Error
		if err != nil {
			a.notifier.Notify(Notice{Level: LevelError, Title: "Error", Description: err.Error()})
			return false, err
		}
		a.reload(ctx, userID)
		a.notifier.Notify(Notice{Level: LevelSuccess, Title: "Added to cart", Description: "Item added successfully"})
		return false, nil

	default:
		a.notifier.Notify(Notice{Level: LevelError, Title: "Error", Description: findErr.Error()})
		return false, findErr
	}
}

// SetQuantity updates a cart row to an absolute quantity. Zero or below
// removes the row. Quantities above the product's stock are rejected.
func (a *Accessor) SetQuantity(ctx context.Context, userID string, itemID uint, quantity int) error {
	if quantity <= 0 {
		return a.Remove(ctx, userID, itemID)
	}
	if userID == "" {
		a.notifier.Notify(Notice{
			Level:       LevelError,
			Title:       "Please sign in",
			Description: "You need to be signed in to update your cart",
		})
		return ErrSignInRequired
	}

	l := a.userLock(userID)
	l.Lock()
	defer l.Unlock()

	var item models.CartItem
	err := a.db.WithContext(ctx).Preload("Product").
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			a.notifier.Notify(Notice{Level: LevelError, Title: "Error", Description: "Cart item not found"})
			return ErrItemNotFound
		}
		a.notifier.Notify(Notice{Level: LevelError, Title: "Error", Description: err.Error()})
		return err
	}

	if quantity > item.Product.Stock {
		a.notifyStock(item.Product)
		return ErrNotEnoughStock
	}

	err = a.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", item.ID).
		Update("quantity", quantity).Error
	if err != nil {
		a.notifier.Notify(Notice{Level: LevelError, Title: "Error", Description: err.Error()})
		return err
	}
	a.reload(ctx, userID)
	return nil
}

// Remove deletes one cart row. The snapshot is only refreshed after a
// successful delete; a store failure leaves it untouched.
func (a *Accessor) Remove(ctx context.Context, userID string, itemID uint) error {
	if userID == "" {
		a.notifier.Notify(Notice{
			Level:       LevelError,
			Title:       "Please sign in",
			Description: "You need to be signed in to update your cart",
		})
		return ErrSignInRequired
	}

	l := a.userLock(userID)
	l.Lock()
	defer l.Unlock()

	res := a.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		a.notifier.Notify(Notice{Level: LevelError, Title: "Error", Description: res.Error.Error()})
		return res.Error
	}
	if res.RowsAffected == 0 {
		a.notifier.Notify(Notice{Level: LevelError, Title: "Error", Description: "Cart item not found"})
		return ErrItemNotFound
	}

	a.reload(ctx, userID)
	a.notifier.Notify(Notice{Level: LevelSuccess, Title: "Removed from cart", Description: "Item removed successfully"})
	return nil
}

// Clear deletes every cart row for the user.
func (a *Accessor) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}

	l := a.userLock(userID)
	l.Lock()
	defer l.Unlock()

	err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
	if err != nil {
		a.notifier.Notify(Notice{Level: LevelError, Title: "Error", Description: err.Error()})
		return err
	}
	a.reload(ctx, userID)
	return nil
}

// Items returns a copy of the user's current snapshot.
func (a *Accessor) Items(userID string) []models.CartItem {
	a.mu.Lock()
	defer a.mu.Unlock()
	items := make([]models.CartItem, len(a.snapshots[userID]))
	copy(items, a.snapshots[userID])
	return items
}

// ItemCount is the sum of quantities over the snapshot, not the row count.
func (a *Accessor) ItemCount(userID string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	count := 0
	for _, item := range a.snapshots[userID] {
		count += item.Quantity
	}
	return count
}

// TotalAmount is the sum of price×quantity over the snapshot.
func (a *Accessor) TotalAmount(userID string) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	total := 0.0
	for _, item := range a.snapshots[userID] {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func (a *Accessor) notifyStock(p models.Product) {
	a.notifier.Notify(Notice{
		Level:       LevelError,
		Title:       "Not enough stock",
		Description: fmt.Sprintf("Only %d of %s available", p.Stock, p.Name),
	})
}
