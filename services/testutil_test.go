package services_test

import (
	"testing"

	"foodbot/entity"
	"foodbot/repository"
	"foodbot/services"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	db       *gorm.DB
	users    *services.UserService
	catalog  *services.CatalogService
	cart     *services.CartService
	orders   *services.OrderService
	checkout *services.CheckoutService

	catalogRepo *repository.CatalogRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// one connection only: an in-memory sqlite database exists per connection,
	// so a query on a second pooled connection would see an empty schema
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Category{}, &entity.Product{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))

	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	f := &fixture{
		db:          db,
		users:       services.NewUserService(db, userRepo),
		catalog:     services.NewCatalogService(db, catalogRepo),
		cart:        services.NewCartService(db, cartRepo, catalogRepo),
		catalogRepo: catalogRepo,
	}
	f.orders = services.NewOrderService(db, orderRepo, cartRepo, catalogRepo, userRepo)
	f.checkout = services.NewCheckoutService(f.cart, f.orders)
	return f
}

func (f *fixture) createUser(t *testing.T, telegramID int64) *entity.User {
	t.Helper()
	u, err := f.users.GetOrCreate(telegramID, "Test", "User", "testuser")
	require.NoError(t, err)
	return u
}

// createCatalog seeds one restaurant with two products: a pizza at 899 and a
// drink at 199.
func (f *fixture) createCatalog(t *testing.T) (restaurantID uint, pizza, cola *entity.Product) {
	t.Helper()

	rest := &entity.Restaurant{Name: "Pizza Palace", IsActive: true}
	require.NoError(t, f.catalogRepo.CreateRestaurant(rest))

	cat := &entity.Category{Name: "Pizza", RestaurantID: rest.ID}
	require.NoError(t, f.catalogRepo.CreateCategory(cat))

	pizza = &entity.Product{Name: "Margherita", Price: 899, IsAvailable: true, CategoryID: cat.ID}
	require.NoError(t, f.catalogRepo.CreateProduct(pizza))

	cola = &entity.Product{Name: "Coca-Cola", Price: 199, IsAvailable: true, CategoryID: cat.ID}
	require.NoError(t, f.catalogRepo.CreateProduct(cola))

	return rest.ID, pizza, cola
}

// createSecondRestaurant adds another restaurant with one product.
func (f *fixture) createSecondRestaurant(t *testing.T) *entity.Product {
	t.Helper()

	rest := &entity.Restaurant{Name: "Sushi Star", IsActive: true}
	require.NoError(t, f.catalogRepo.CreateRestaurant(rest))

	cat := &entity.Category{Name: "Rolls", RestaurantID: rest.ID}
	require.NoError(t, f.catalogRepo.CreateCategory(cat))

	roll := &entity.Product{Name: "California Roll", Price: 1299, IsAvailable: true, CategoryID: cat.ID}
	require.NoError(t, f.catalogRepo.CreateProduct(roll))
	return roll
}
