package repository

import (
	"errors"

	"foodbot/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// CartLine is a cart item with its product resolved, so callers get the live
// price and display fields without another fetch.
type CartLine struct {
	Item    entity.CartItem
	Product entity.Product
}

func (l CartLine) Subtotal() int64 {
	return l.Product.Price * int64(l.Item.Quantity)
}

// Lines reads on the handle it is given so a transactional caller sees its
// own snapshot, not another pooled connection's.
func (r *CartRepository) Lines(tx *gorm.DB, userID uint) ([]CartLine, error) {
	var items []entity.CartItem
	if err := tx.Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []CartLine{}, nil
	}

	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	var products []entity.Product
	if err := tx.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]CartLine, 0, len(items))
	for _, it := range items {
		out = append(out, CartLine{Item: it, Product: byID[it.ProductID]})
	}
	return out, nil
}

// AddItem merges into an existing (user, product) row with an atomic
// increment, so two concurrent adds never lose an update. Returns the row
// after the merge or insert.
func (r *CartRepository) AddItem(tx *gorm.DB, userID, productID uint, qty int) (*entity.CartItem, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", gorm.Expr("quantity + ?", qty))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		item := &entity.CartItem{UserID: userID, ProductID: productID, Quantity: qty}
		if err := tx.Create(item).Error; err != nil {
			return nil, err
		}
		return item, nil
	}

	var item entity.CartItem
	if err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Get(itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.First(&item, itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) SetQuantity(tx *gorm.DB, itemID uint, qty int) (*entity.CartItem, error) {
	res := tx.Model(&entity.CartItem{}).Where("id = ?", itemID).Update("quantity", qty)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	var item entity.CartItem
	if err := tx.First(&item, itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Remove reports whether a row was actually deleted. Deletes are hard: a
// soft-deleted row would keep occupying the (user, product) unique index and
// block the product from ever being re-added.
func (r *CartRepository) Remove(tx *gorm.DB, itemID uint) (bool, error) {
	res := tx.Unscoped().Delete(&entity.CartItem{}, itemID)
	return res.RowsAffected > 0, res.Error
}

// Clear drops every cart row for the user. Idempotent, hard delete for the
// same reason as Remove.
func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
