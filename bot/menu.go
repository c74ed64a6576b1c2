package bot

import (
	"fmt"

	"foodbot/entity"
	"foodbot/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) cmdStart(msg *tgbotapi.Message) error {
	_, err := b.users.GetOrCreate(msg.From.ID, msg.From.FirstName, msg.From.LastName, msg.From.UserName)
	if err != nil {
		return err
	}

	text := fmt.Sprintf(
		"Welcome to Food Delivery Bot, %s!\n\n"+
			"Here you can order food from the best restaurants.\n\n"+
			"Commands:\n"+
			"/menu - Browse restaurants\n"+
			"/cart - View your cart\n"+
			"/orders - Your order history\n"+
			"/help - Help",
		msg.From.FirstName,
	)
	return b.sendWithKeyboard(msg.Chat.ID, text, webAppMenuKeyboard(b.webAppBaseURL))
}

func (b *Bot) cmdMenu(msg *tgbotapi.Message) error {
	restaurants, err := b.catalog.ActiveRestaurants()
	if err != nil {
		return err
	}
	if len(restaurants) == 0 {
		return b.sendText(msg.Chat.ID, "No restaurants available at the moment.")
	}
	return b.sendWithKeyboard(msg.Chat.ID, "Choose a restaurant:", restaurantsKeyboard(restaurants))
}

func (b *Bot) cbBackRestaurants(cq *tgbotapi.CallbackQuery) error {
	restaurants, err := b.catalog.ActiveRestaurants()
	if err != nil {
		return err
	}
	if len(restaurants) == 0 {
		return b.editText(cq, "No restaurants available at the moment.")
	}
	if err := b.editWithKeyboard(cq, "Choose a restaurant:", restaurantsKeyboard(restaurants)); err != nil {
		return err
	}
	return b.answer(cq, "")
}

func (b *Bot) cbRestaurant(cq *tgbotapi.CallbackQuery, cb CallbackData) error {
	restaurant, err := b.catalog.Restaurant(cb.ID)
	if err != nil {
		return err
	}
	if restaurant == nil {
		return b.alert(cq, "Restaurant not found")
	}

	menu, err := b.catalog.Menu(cb.ID)
	if err != nil {
		return err
	}
	if len(menu) == 0 {
		return b.alert(cq, "Menu is empty")
	}

	text := fmt.Sprintf("<b>%s</b>\n", restaurant.Name)
	if restaurant.Description != "" {
		text += restaurant.Description + "\n"
	}
	text += "\nChoose a category:"

	if err := b.editWithKeyboard(cq, text, categoriesKeyboard(menu, restaurant.ID)); err != nil {
		return err
	}
	return b.answer(cq, "")
}

func (b *Bot) cbCategory(cq *tgbotapi.CallbackQuery, cb CallbackData) error {
	menu, err := b.catalog.Menu(cb.Extra)
	if err != nil {
		return err
	}

	var products []entity.Product
	var name string
	for _, cm := range menu {
		if cm.Category.ID == cb.ID {
			name = cm.Category.Name
			for _, p := range cm.Products {
				if p.IsAvailable {
					products = append(products, p)
				}
			}
			break
		}
	}
	if name == "" {
		return b.alert(cq, "Category not found")
	}
	if len(products) == 0 {
		return b.alert(cq, "No products available in this category")
	}

	text := fmt.Sprintf("<b>%s</b>\n\nSelect a dish:", name)
	if err := b.editWithKeyboard(cq, text, productsKeyboard(products, cb.Extra)); err != nil {
		return err
	}
	return b.answer(cq, "")
}

func (b *Bot) cbProduct(cq *tgbotapi.CallbackQuery, cb CallbackData) error {
	product, err := b.catalog.Product(cb.ID)
	if err != nil {
		return err
	}
	if product == nil {
		return b.alert(cq, "Product not found")
	}

	restaurantID, err := b.catalog.RestaurantIDForProduct(product.ID)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("<b>%s</b>\n", product.Name)
	if product.Description != "" {
		text += "\n" + product.Description + "\n"
	}
	text += fmt.Sprintf("\nPrice: <b>%s $</b>", product.PriceDisplay())

	if err := b.editWithKeyboard(cq, text, productDetailKeyboard(product, restaurantID)); err != nil {
		return err
	}
	return b.answer(cq, "")
}

func (b *Bot) cbAddToCart(cq *tgbotapi.CallbackQuery, cb CallbackData) error {
	user, err := b.requireUser(cq)
	if err != nil || user == nil {
		return err
	}

	if _, err := b.cart.AddItem(user.ID, cb.ID, 1); err != nil {
		switch err {
		case services.ErrProductNotFound:
			return b.alert(cq, "Product not found")
		case services.ErrProductUnavailable:
			return b.alert(cq, "This product is not available right now")
		case services.ErrAnotherRestaurant:
			return b.alert(cq, "Your cart holds items from another restaurant. Clear it first.")
		default:
			return err
		}
	}
	return b.answer(cq, "Added to cart!")
}
