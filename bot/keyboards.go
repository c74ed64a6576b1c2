package bot

import (
	"fmt"

	"foodbot/entity"
	"foodbot/repository"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func restaurantsKeyboard(restaurants []entity.Restaurant) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(restaurants))
	for _, r := range restaurants {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(r.Name, CallbackData{Kind: KindRestaurant, ID: r.ID}.Encode()),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func categoriesKeyboard(menu []repository.CategoryMenu, restaurantID uint) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(menu)+1)
	for _, cm := range menu {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				cm.Category.Name,
				CallbackData{Kind: KindCategory, ID: cm.Category.ID, Extra: restaurantID}.Encode(),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("< Back to restaurants", DataBackRestaurants),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func productsKeyboard(products []entity.Product, restaurantID uint) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(products)+1)
	for _, p := range products {
		if !p.IsAvailable {
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s - %s $", p.Name, p.PriceDisplay()),
				CallbackData{Kind: KindProduct, ID: p.ID}.Encode(),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(
			"< Back to categories",
			CallbackData{Kind: KindRestaurant, ID: restaurantID}.Encode(),
		),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func productDetailKeyboard(p *entity.Product, restaurantID uint) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"Add to cart",
				CallbackData{Kind: KindAddToCart, ID: p.ID}.Encode(),
			),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"< Back",
				CallbackData{Kind: KindCategory, ID: p.CategoryID, Extra: restaurantID}.Encode(),
			),
		),
	)
}

func cartKeyboard(lines []repository.CartLine) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(lines)+2)
	for _, l := range lines {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("- %s x%d (%s$)", l.Product.Name, l.Item.Quantity, l.Product.PriceDisplay()),
				DataNoop,
			),
			tgbotapi.NewInlineKeyboardButtonData(
				"X",
				CallbackData{Kind: KindCartAction, Action: "remove", ID: l.Item.ID}.Encode(),
			),
		))
	}
	if len(lines) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Checkout", CallbackData{Kind: KindCartAction, Action: "checkout"}.Encode()),
			tgbotapi.NewInlineKeyboardButtonData("Clear cart", CallbackData{Kind: KindCartAction, Action: "clear"}.Encode()),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("< Browse restaurants", DataBackRestaurants),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func ordersListKeyboard(orders []entity.Order) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("Order #%d - %s", o.ID, o.Status.Label()),
				CallbackData{Kind: KindOrder, ID: o.ID}.Encode(),
			),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func orderDetailKeyboard(o *entity.Order) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, 2)
	if o.Status == entity.StatusPending {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"Cancel order",
				CallbackData{Kind: KindOrderAct, Action: "cancel", ID: o.ID}.Encode(),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("< My orders", DataMyOrders),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// adminNextAction maps the status an order sits in to the single admin action
// that advances it. Derived from the transition table, not a parallel copy of
// it: the service re-checks every transition.
var adminNextAction = map[entity.OrderStatus]struct {
	label  string
	action string
}{
	entity.StatusPending:    {"Confirm", "confirm"},
	entity.StatusConfirmed:  {"Start preparing", "prepare"},
	entity.StatusPreparing:  {"Send for delivery", "deliver"},
	entity.StatusDelivering: {"Mark delivered", "complete"},
}

func adminOrderKeyboard(o *entity.Order) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, 2)
	if next, ok := adminNextAction[o.Status]; ok {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				next.label,
				CallbackData{Kind: KindOrderAct, Action: next.action, ID: o.ID}.Encode(),
			),
		))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"Cancel",
				CallbackData{Kind: KindOrderAct, Action: "admin_cancel", ID: o.ID}.Encode(),
			),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func webAppMenuKeyboard(baseURL string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("Open Mini App", baseURL+"/webapp"),
		),
	)
}
