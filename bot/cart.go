package bot

import (
	"errors"
	"fmt"
	"strings"

	"foodbot/entity"
	"foodbot/repository"
	"foodbot/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func renderCart(lines []repository.CartLine) string {
	var sb strings.Builder
	sb.WriteString("<b>Your Cart:</b>\n\n")
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
		fmt.Fprintf(&sb, "  %s x%d - %s $\n", l.Product.Name, l.Item.Quantity, entity.FormatPrice(l.Subtotal()))
	}
	fmt.Fprintf(&sb, "\n<b>Total: %s $</b>", entity.FormatPrice(total))
	return sb.String()
}

func (b *Bot) cmdCart(msg *tgbotapi.Message) error {
	user, err := b.users.ByTelegramID(msg.From.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return b.sendText(msg.Chat.ID, "Please /start the bot first.")
	}

	lines, err := b.cart.Items(user.ID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return b.sendText(msg.Chat.ID, "Your cart is empty. Use /menu to browse restaurants.")
	}
	return b.sendWithKeyboard(msg.Chat.ID, renderCart(lines), cartKeyboard(lines))
}

func (b *Bot) cbCartAction(cq *tgbotapi.CallbackQuery, cb CallbackData) error {
	user, err := b.requireUser(cq)
	if err != nil || user == nil {
		return err
	}

	switch cb.Action {
	case "remove":
		if _, err := b.cart.RemoveItem(cb.ID); err != nil {
			return err
		}
		lines, err := b.cart.Items(user.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			if err := b.editText(cq, "Your cart is now empty."); err != nil {
				return err
			}
		} else if err := b.editWithKeyboard(cq, renderCart(lines), cartKeyboard(lines)); err != nil {
			return err
		}
		return b.answer(cq, "Removed")

	case "clear":
		if err := b.cart.Clear(user.ID); err != nil {
			return err
		}
		if err := b.editText(cq, "Cart cleared."); err != nil {
			return err
		}
		return b.answer(cq, "")

	case "checkout":
		prompt, err := b.checkout.Begin(user)
		if err != nil {
			if errors.Is(err, services.ErrCartEmpty) {
				return b.alert(cq, "Cart is empty")
			}
			return err
		}
		if err := b.sendCheckoutPrompt(cq.Message.Chat.ID, prompt); err != nil {
			return err
		}
		return b.answer(cq, "")
	}
	return b.answer(cq, "")
}

// handleCheckoutInput feeds free text into the active checkout conversation.
func (b *Bot) handleCheckoutInput(msg *tgbotapi.Message, user *entity.User) error {
	prompt, err := b.checkout.Input(user, msg.Text)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			return b.sendText(msg.Chat.ID, "Cart is empty.")
		}
		return err
	}
	return b.sendCheckoutPrompt(msg.Chat.ID, prompt)
}

func (b *Bot) sendCheckoutPrompt(chatID int64, prompt *services.CheckoutPrompt) error {
	switch prompt.Step {
	case services.StepAskAddress:
		return b.sendText(chatID, "Please enter your delivery address:")

	case services.StepAskPhone:
		return b.sendText(chatID, "Enter your phone number:")

	case services.StepConfirm:
		s := prompt.Summary
		var sb strings.Builder
		sb.WriteString("<b>Order Summary:</b>\n\n")
		for _, l := range s.Lines {
			fmt.Fprintf(&sb, "  %s x%d - %s $\n", l.Product.Name, l.Item.Quantity, entity.FormatPrice(l.Subtotal()))
		}
		fmt.Fprintf(&sb, "\n<b>Total: %s $</b>", entity.FormatPrice(s.Total))
		fmt.Fprintf(&sb, "\nAddress: %s", s.Address)
		fmt.Fprintf(&sb, "\nPhone: %s", s.Phone)
		sb.WriteString("\n\nSend 'yes' to confirm or 'no' to cancel.")
		return b.sendText(chatID, sb.String())

	case services.StepCommitted:
		o := prompt.Order
		return b.sendText(chatID, fmt.Sprintf(
			"Order #%d placed!\nStatus: %s\n\n"+
				"We will notify you when the status changes.\n"+
				"Track your order with /orders",
			o.ID, o.Status,
		))

	case services.StepCancelled:
		return b.sendText(chatID, "Order cancelled. Your cart is still saved.\nUse /cart to view it.")
	}
	return nil
}
