package services

import (
	"foodbot/entity"
	"foodbot/repository"

	"gorm.io/gorm"
)

type CatalogService struct {
	DB   *gorm.DB
	Repo *repository.CatalogRepository
}

func NewCatalogService(db *gorm.DB, repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{DB: db, Repo: repo}
}

func (s *CatalogService) ActiveRestaurants() ([]entity.Restaurant, error) {
	return s.Repo.ActiveRestaurants()
}

func (s *CatalogService) Restaurant(id uint) (*entity.Restaurant, error) {
	return s.Repo.RestaurantByID(id)
}

func (s *CatalogService) Menu(restaurantID uint) ([]repository.CategoryMenu, error) {
	return s.Repo.MenuForRestaurant(restaurantID)
}

func (s *CatalogService) Product(id uint) (*entity.Product, error) {
	return s.Repo.ProductByID(id)
}

func (s *CatalogService) RestaurantIDForProduct(productID uint) (uint, error) {
	return s.Repo.RestaurantIDForProduct(s.DB, productID)
}

func (s *CatalogService) Seeded() (bool, error) {
	cnt, err := s.Repo.CountRestaurants()
	return cnt > 0, err
}
