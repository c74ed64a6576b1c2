package bot

import (
	"errors"
	"fmt"
	"strings"

	"foodbot/entity"
	"foodbot/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// adminActionStatus maps admin callback actions to target statuses. The
// service still validates every transition against the state machine.
var adminActionStatus = map[string]entity.OrderStatus{
	"confirm":      entity.StatusConfirmed,
	"prepare":      entity.StatusPreparing,
	"deliver":      entity.StatusDelivering,
	"complete":     entity.StatusDelivered,
	"admin_cancel": entity.StatusCancelled,
}

func (b *Bot) isAdmin(telegramID int64) bool {
	return b.admins[telegramID]
}

func (b *Bot) cmdAdmin(msg *tgbotapi.Message) error {
	if !b.isAdmin(msg.From.ID) {
		return b.sendText(msg.Chat.ID, "Access denied.")
	}
	return b.sendText(msg.Chat.ID,
		"<b>Admin Panel</b>\n\n"+
			"/pending - View pending orders\n"+
			"/seed - Load sample data")
}

func (b *Bot) cmdPending(msg *tgbotapi.Message) error {
	if !b.isAdmin(msg.From.ID) {
		return nil
	}

	orders, err := b.orders.PendingOrders()
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return b.sendText(msg.Chat.ID, "No pending orders.")
	}

	for _, o := range orders {
		items, err := b.orders.ItemsOf(o.ID)
		if err != nil {
			return err
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "<b>Order #%d</b>\n", o.ID)
		fmt.Fprintf(&sb, "Address: %s\n", o.DeliveryAddress)
		fmt.Fprintf(&sb, "Phone: %s\n", o.Phone)
		fmt.Fprintf(&sb, "Total: %s $\n\n", o.TotalDisplay())
		sb.WriteString("Items:\n")
		for _, it := range items {
			p, err := b.catalog.Product(it.ProductID)
			name := "?"
			if err == nil && p != nil {
				name = p.Name
			}
			fmt.Fprintf(&sb, "  %s x%d\n", name, it.Quantity)
		}

		order := o
		if err := b.sendWithKeyboard(msg.Chat.ID, sb.String(), adminOrderKeyboard(&order)); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) adminOrderAction(cq *tgbotapi.CallbackQuery, cb CallbackData) error {
	if !b.isAdmin(cq.From.ID) {
		return b.answer(cq, "")
	}

	next, ok := adminActionStatus[cb.Action]
	if !ok {
		return b.answer(cq, "")
	}

	order, err := b.orders.UpdateStatus(cb.ID, next)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			return b.alert(cq, "Order not found")
		case errors.Is(err, services.ErrInvalidTransition):
			return b.alert(cq, "That status change is not allowed")
		default:
			return err
		}
	}

	if err := b.editText(cq, fmt.Sprintf("Order #%d updated to: %s", order.ID, order.Status)); err != nil {
		return err
	}
	return b.answer(cq, fmt.Sprintf("Status: %s", order.Status))
}

func (b *Bot) cmdSeed(msg *tgbotapi.Message) error {
	if !b.isAdmin(msg.From.ID) {
		return nil
	}

	seeded, err := b.catalog.Seeded()
	if err != nil {
		return err
	}
	if seeded {
		return b.sendText(msg.Chat.ID, "Data already loaded. Restaurants exist.")
	}

	if b.seedSample == nil {
		return b.sendText(msg.Chat.ID, "Seeding is not configured.")
	}
	if err := b.seedSample(); err != nil {
		return err
	}
	return b.sendText(msg.Chat.ID, "Sample data loaded!\n  3 restaurants, multiple categories and products created.")
}
