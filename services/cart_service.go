package services

import (
	"foodbot/entity"
	"foodbot/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository // product lookups and restaurant resolution
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catr *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: catr}
}

// AddItem merges qty into the (user, product) line, creating it if absent.
// A product from a different restaurant than the current cart contents is
// rejected, so a cart never spans two restaurants.
func (s *CartService) AddItem(userID, productID uint, qty int) (*entity.CartItem, error) {
	if qty <= 0 {
		qty = 1
	}

	p, err := s.CatalogRepo.ProductByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	if !p.IsAvailable {
		return nil, ErrProductUnavailable
	}

	lines, err := s.CartRepo.Lines(s.DB, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) > 0 {
		cartRest, err := s.CatalogRepo.RestaurantIDForProduct(s.DB, lines[0].Item.ProductID)
		if err != nil {
			return nil, err
		}
		newRest, err := s.CatalogRepo.RestaurantIDForProduct(s.DB, productID)
		if err != nil {
			return nil, err
		}
		if cartRest != newRest {
			return nil, ErrAnotherRestaurant
		}
	}

	var item *entity.CartItem
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		item, err = s.CartRepo.AddItem(tx, userID, productID, qty)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity sets the quantity, deleting the line when qty drops to zero
// or below. An unknown item id is a no-op, not an error; callers treat
// absence as a normal outcome.
func (s *CartService) UpdateQuantity(itemID uint, qty int) (item *entity.CartItem, removed bool, err error) {
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if qty <= 0 {
			gone, err := s.CartRepo.Remove(tx, itemID)
			if err != nil {
				return err
			}
			removed = gone
			return nil
		}
		updated, err := s.CartRepo.SetQuantity(tx, itemID, qty)
		if err != nil {
			return err
		}
		item = updated
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return item, removed, nil
}

func (s *CartService) RemoveItem(itemID uint) (bool, error) {
	var removed bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		removed, err = s.CartRepo.Remove(tx, itemID)
		return err
	})
	return removed, err
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
}

func (s *CartService) Items(userID uint) ([]repository.CartLine, error) {
	return s.CartRepo.Lines(s.DB, userID)
}

// Total is recomputed from live product prices; pre-checkout pricing floats
// with catalog edits, unlike the frozen prices on an order.
func (s *CartService) Total(userID uint) (int64, error) {
	lines, err := s.CartRepo.Lines(s.DB, userID)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total, nil
}
