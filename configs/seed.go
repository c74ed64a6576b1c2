package configs

import (
	"foodbot/entity"
	"foodbot/repository"

	"gorm.io/gorm"
)

// SeedSampleData loads the demo catalog. No-op once restaurants exist.
func SeedSampleData(db *gorm.DB) error {
	repo := repository.NewCatalogRepository(db)

	cnt, err := repo.CountRestaurants()
	if err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	type productSeed struct {
		name        string
		price       int64
		description string
	}
	type categorySeed struct {
		name     string
		products []productSeed
	}
	type restaurantSeed struct {
		name        string
		description string
		address     string
		categories  []categorySeed
	}

	seeds := []restaurantSeed{
		{
			name: "Pizza Palace", description: "Best pizza in town!", address: "123 Main St",
			categories: []categorySeed{
				{name: "Pizza", products: []productSeed{
					{"Margherita", 899, "Classic tomato and mozzarella"},
					{"Pepperoni", 1099, "Spicy pepperoni with cheese"},
					{"Hawaiian", 1199, "Ham and pineapple"},
				}},
				{name: "Drinks", products: []productSeed{
					{"Coca-Cola", 199, "330ml can"},
					{"Water", 99, "500ml bottle"},
				}},
			},
		},
		{
			name: "Sushi Star", description: "Fresh Japanese cuisine", address: "456 Oak Ave",
			categories: []categorySeed{
				{name: "Rolls", products: []productSeed{
					{"California Roll", 1299, "Crab, avocado, cucumber"},
					{"Spicy Tuna Roll", 1399, "Fresh tuna with spicy sauce"},
				}},
				{name: "Sashimi", products: []productSeed{
					{"Salmon Sashimi", 1599, "5 pieces of fresh salmon"},
					{"Tuna Sashimi", 1699, "5 pieces of fresh tuna"},
				}},
			},
		},
		{
			name: "Burger Barn", description: "Gourmet burgers and fries", address: "789 Elm Blvd",
			categories: []categorySeed{
				{name: "Burgers", products: []productSeed{
					{"Classic Burger", 999, "Beef patty with lettuce and tomato"},
					{"Cheese Burger", 1099, "With cheddar cheese"},
					{"Bacon Burger", 1299, "Crispy bacon and BBQ sauce"},
				}},
				{name: "Sides", products: []productSeed{
					{"French Fries", 399, "Crispy golden fries"},
					{"Onion Rings", 499, "Beer-battered onion rings"},
				}},
			},
		},
	}

	for _, rs := range seeds {
		rest := &entity.Restaurant{
			Name:        rs.name,
			Description: rs.description,
			Address:     rs.address,
			IsActive:    true,
		}
		if err := repo.CreateRestaurant(rest); err != nil {
			return err
		}
		for _, cs := range rs.categories {
			cat := &entity.Category{Name: cs.name, RestaurantID: rest.ID}
			if err := repo.CreateCategory(cat); err != nil {
				return err
			}
			for _, ps := range cs.products {
				p := &entity.Product{
					Name:        ps.name,
					Description: ps.description,
					Price:       ps.price,
					IsAvailable: true,
					CategoryID:  cat.ID,
				}
				if err := repo.CreateProduct(p); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
