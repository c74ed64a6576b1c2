package repository

import (
	"errors"

	"foodbot/entity"

	"gorm.io/gorm"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// CategoryMenu is a category with its products resolved, built from explicit
// queries so entities stay flat.
type CategoryMenu struct {
	Category entity.Category
	Products []entity.Product
}

func (r *CatalogRepository) ActiveRestaurants() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("is_active = ?", true).Order("id").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) RestaurantByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.First(&rest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *CatalogRepository) MenuForRestaurant(restaurantID uint) ([]CategoryMenu, error) {
	var cats []entity.Category
	if err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id").Find(&cats).Error; err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return []CategoryMenu{}, nil
	}

	catIDs := make([]uint, 0, len(cats))
	for _, c := range cats {
		catIDs = append(catIDs, c.ID)
	}
	var products []entity.Product
	if err := r.DB.Where("category_id IN ?", catIDs).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}

	byCat := make(map[uint][]entity.Product, len(cats))
	for _, p := range products {
		byCat[p.CategoryID] = append(byCat[p.CategoryID], p)
	}

	out := make([]CategoryMenu, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryMenu{Category: c, Products: byCat[c.ID]})
	}
	return out, nil
}

func (r *CatalogRepository) CategoryByID(id uint) (*entity.Category, error) {
	var c entity.Category
	err := r.DB.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogRepository) ProductByID(id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// RestaurantIDForProduct resolves product -> category -> restaurant on the
// given handle, which may be a transaction.
func (r *CatalogRepository) RestaurantIDForProduct(tx *gorm.DB, productID uint) (uint, error) {
	var row struct{ RestaurantID uint }
	err := tx.Table("products AS p").
		Select("c.restaurant_id").
		Joins("JOIN categories c ON c.id = p.category_id").
		Where("p.id = ?", productID).
		Scan(&row).Error
	return row.RestaurantID, err
}

func (r *CatalogRepository) CountRestaurants() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).Count(&cnt).Error
	return cnt, err
}

// ---------------- seed helpers ----------------

func (r *CatalogRepository) CreateRestaurant(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *CatalogRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *CatalogRepository) CreateProduct(p *entity.Product) error {
	return r.DB.Create(p).Error
}
