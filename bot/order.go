package bot

import (
	"errors"
	"fmt"
	"strings"

	"foodbot/entity"
	"foodbot/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const ordersPageSize = 10

func (b *Bot) renderOrdersList(orders []entity.Order) (string, tgbotapi.InlineKeyboardMarkup) {
	if len(orders) > ordersPageSize {
		orders = orders[:ordersPageSize]
	}
	var sb strings.Builder
	sb.WriteString("<b>Your Orders:</b>\n\n")
	for _, o := range orders {
		fmt.Fprintf(&sb, "Order #%d - %s\n  Total: %s $\n  Date: %s\n\n",
			o.ID, o.Status.Label(), o.TotalDisplay(), o.CreatedAt.Format("2006-01-02 15:04"))
	}
	return sb.String(), ordersListKeyboard(orders)
}

func (b *Bot) cmdOrders(msg *tgbotapi.Message) error {
	user, err := b.users.ByTelegramID(msg.From.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return b.sendText(msg.Chat.ID, "Please /start the bot first.")
	}

	orders, err := b.orders.OrdersForUser(user.ID)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return b.sendText(msg.Chat.ID, "You have no orders yet. Use /menu to browse restaurants.")
	}

	text, kb := b.renderOrdersList(orders)
	return b.sendWithKeyboard(msg.Chat.ID, text, kb)
}

func (b *Bot) cbMyOrders(cq *tgbotapi.CallbackQuery) error {
	user, err := b.requireUser(cq)
	if err != nil || user == nil {
		return err
	}

	orders, err := b.orders.OrdersForUser(user.ID)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		if err := b.editText(cq, "You have no orders yet."); err != nil {
			return err
		}
		return b.answer(cq, "")
	}

	text, kb := b.renderOrdersList(orders)
	if err := b.editWithKeyboard(cq, text, kb); err != nil {
		return err
	}
	return b.answer(cq, "")
}

func (b *Bot) cbOrderDetail(cq *tgbotapi.CallbackQuery, cb CallbackData) error {
	order, err := b.orders.GetByID(cb.ID)
	if err != nil {
		return err
	}
	if order == nil {
		return b.alert(cq, "Order not found")
	}

	items, err := b.orders.ItemsOf(order.ID)
	if err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>Order #%d</b>\n\n", order.ID)
	fmt.Fprintf(&sb, "Status: %s\n", order.Status.Label())
	fmt.Fprintf(&sb, "Address: %s\n", order.DeliveryAddress)
	fmt.Fprintf(&sb, "Phone: %s\n\n", order.Phone)
	sb.WriteString("<b>Items:</b>\n")
	for _, it := range items {
		p, err := b.catalog.Product(it.ProductID)
		name := "?"
		if err == nil && p != nil {
			name = p.Name
		}
		fmt.Fprintf(&sb, "  %s x%d - %s $\n", name, it.Quantity, entity.FormatPrice(it.Subtotal()))
	}
	fmt.Fprintf(&sb, "\n<b>Total: %s $</b>", order.TotalDisplay())
	if order.Comment != "" {
		fmt.Fprintf(&sb, "\nComment: %s", order.Comment)
	}

	if err := b.editWithKeyboard(cq, sb.String(), orderDetailKeyboard(order)); err != nil {
		return err
	}
	return b.answer(cq, "")
}

// cbOrderAction covers both the customer's own cancel and the admin status
// actions; everything funnels through the guarded service transitions.
func (b *Bot) cbOrderAction(cq *tgbotapi.CallbackQuery, cb CallbackData) error {
	if cb.Action == "cancel" {
		user, err := b.requireUser(cq)
		if err != nil || user == nil {
			return err
		}

		order, err := b.orders.Cancel(cb.ID, user.ID)
		if err != nil {
			if errors.Is(err, services.ErrNotPermitted) || errors.Is(err, services.ErrOrderNotFound) {
				return b.alert(cq, "Cannot cancel this order")
			}
			return err
		}
		if err := b.editText(cq, fmt.Sprintf("Order #%d has been cancelled.", order.ID)); err != nil {
			return err
		}
		return b.answer(cq, "Cancelled")
	}

	return b.adminOrderAction(cq, cb)
}
