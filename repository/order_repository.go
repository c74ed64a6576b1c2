package repository

import (
	"errors"

	"foodbot/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetByID(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.First(&o, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusFromTo flips the status only while the row still holds the
// expected current value; a false return means the order is gone or someone
// raced us past that state.
func (r *OrderRepository) UpdateStatusFromTo(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListActiveForUser(userID uint) ([]entity.Order, error) {
	active := []entity.OrderStatus{
		entity.StatusPending, entity.StatusConfirmed,
		entity.StatusPreparing, entity.StatusDelivering,
	}
	var out []entity.Order
	err := r.DB.Where("user_id = ? AND status IN ?", userID, active).
		Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

// ListPending returns the admin queue, oldest first.
func (r *OrderRepository) ListPending() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("status = ?", entity.StatusPending).
		Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) Items(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}
