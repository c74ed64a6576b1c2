package services

import (
	"foodbot/entity"
	"foodbot/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
	UserRepo    *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	catalogRepo *repository.CatalogRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, CatalogRepo: catalogRepo, UserRepo: userRepo}
}

// CreateFromCart persists a pending order from the exact snapshot of cart
// lines passed in. The total and per-item prices come from that snapshot, not
// from a re-read, so the caller's summary and the stored order always agree.
func (s *OrderService) CreateFromCart(
	tx *gorm.DB,
	userID, restaurantID uint,
	lines []repository.CartLine,
	address, phone, comment string,
) (*entity.Order, error) {
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	var total int64
	for _, l := range lines {
		total += l.Product.Price * int64(l.Item.Quantity)
	}

	order := &entity.Order{
		UserID:          userID,
		RestaurantID:    restaurantID,
		Status:          entity.StatusPending,
		Total:           total,
		DeliveryAddress: address,
		Phone:           phone,
		Comment:         comment,
	}
	if err := s.Repo.Create(tx, order); err != nil {
		return nil, err
	}

	for _, l := range lines {
		oi := &entity.OrderItem{
			OrderID:   order.ID,
			ProductID: l.Item.ProductID,
			Quantity:  l.Item.Quantity,
			Price:     l.Product.Price, // frozen here
		}
		if err := s.Repo.CreateItem(tx, oi); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Checkout commits the user's cart: order insert, cart clear and the
// saved-contact update run in one transaction, so a concurrent cart mutation
// can neither be double-billed nor silently dropped.
func (s *OrderService) Checkout(userID uint, address, phone, comment string) (*entity.Order, error) {
	var order *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.Lines(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		// single-restaurant carts are enforced at add time
		restaurantID, err := s.CatalogRepo.RestaurantIDForProduct(tx, lines[0].Item.ProductID)
		if err != nil {
			return err
		}

		order, err = s.CreateFromCart(tx, userID, restaurantID, lines, address, phone, comment)
		if err != nil {
			return err
		}
		if err := s.CartRepo.Clear(tx, userID); err != nil {
			return err
		}
		return s.UserRepo.UpdateContact(tx, userID, phone, address)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves an order along the fulfillment state machine. The
// transition table is enforced here, not in callers.
func (s *OrderService) UpdateStatus(orderID uint, next entity.OrderStatus) (*entity.Order, error) {
	o, err := s.Repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if !o.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.UpdateStatusFromTo(tx, orderID, o.Status, next)
		if err != nil {
			return err
		}
		if !ok {
			// lost the race against another transition
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	o.Status = next
	return o, nil
}

// Cancel succeeds only for the order's owner and only while it is still
// pending; every other combination is ErrNotPermitted and mutates nothing.
func (s *OrderService) Cancel(orderID, userID uint) (*entity.Order, error) {
	o, err := s.Repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if o.UserID != userID || o.Status != entity.StatusPending {
		return nil, ErrNotPermitted
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.UpdateStatusFromTo(tx, orderID, entity.StatusPending, entity.StatusCancelled)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotPermitted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	o.Status = entity.StatusCancelled
	return o, nil
}

func (s *OrderService) GetByID(orderID uint) (*entity.Order, error) {
	return s.Repo.GetByID(orderID)
}

func (s *OrderService) GetForUser(userID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetForUser(userID, orderID)
}

func (s *OrderService) OrdersForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) ActiveOrders(userID uint) ([]entity.Order, error) {
	return s.Repo.ListActiveForUser(userID)
}

func (s *OrderService) PendingOrders() ([]entity.Order, error) {
	return s.Repo.ListPending()
}

func (s *OrderService) ItemsOf(orderID uint) ([]entity.OrderItem, error) {
	return s.Repo.Items(orderID)
}
