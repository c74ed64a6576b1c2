package bot

import (
	"context"
	"log"

	"foodbot/entity"
	"foodbot/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api *tgbotapi.BotAPI

	users    *services.UserService
	catalog  *services.CatalogService
	cart     *services.CartService
	orders   *services.OrderService
	checkout *services.CheckoutService

	webAppBaseURL string
	admins        map[int64]bool
	seedSample    func() error

	// explicit dispatch tables: command name / callback kind -> handler
	commands  map[string]func(msg *tgbotapi.Message) error
	callbacks map[string]func(cq *tgbotapi.CallbackQuery, cb CallbackData) error
}

type Deps struct {
	Users    *services.UserService
	Catalog  *services.CatalogService
	Cart     *services.CartService
	Orders   *services.OrderService
	Checkout *services.CheckoutService

	// SeedSample loads the demo catalog for the /seed admin command.
	SeedSample func() error
}

func New(token, webAppBaseURL string, adminIDs []int64, deps Deps) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}

	b := &Bot{
		api:           api,
		users:         deps.Users,
		catalog:       deps.Catalog,
		cart:          deps.Cart,
		orders:        deps.Orders,
		checkout:      deps.Checkout,
		webAppBaseURL: webAppBaseURL,
		admins:        admins,
		seedSample:    deps.SeedSample,
	}

	b.commands = map[string]func(msg *tgbotapi.Message) error{
		"start":   b.cmdStart,
		"help":    b.cmdStart,
		"menu":    b.cmdMenu,
		"cart":    b.cmdCart,
		"orders":  b.cmdOrders,
		"admin":   b.cmdAdmin,
		"pending": b.cmdPending,
		"seed":    b.cmdSeed,
	}
	b.callbacks = map[string]func(cq *tgbotapi.CallbackQuery, cb CallbackData) error{
		KindRestaurant: b.cbRestaurant,
		KindCategory:   b.cbCategory,
		KindProduct:    b.cbProduct,
		KindAddToCart:  b.cbAddToCart,
		KindCartAction: b.cbCartAction,
		KindOrder:      b.cbOrderDetail,
		KindOrderAct:   b.cbOrderAction,
	}
	return b, nil
}

// Run drives the long-polling loop until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	log.Printf("bot authorized as @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if err := b.handleUpdate(update); err != nil {
				log.Printf("update handling failed: %v", err)
			}
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) error {
	switch {
	case update.Message != nil:
		return b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		return b.handleCallback(update.CallbackQuery)
	}
	return nil
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	if msg.IsCommand() {
		if handler, ok := b.commands[msg.Command()]; ok {
			return handler(msg)
		}
		return b.sendText(msg.Chat.ID, "Unknown command. Try /help.")
	}

	user, err := b.users.ByTelegramID(msg.From.ID)
	if err != nil {
		return err
	}
	if user != nil && b.checkout.Active(user.ID) {
		return b.handleCheckoutInput(msg, user)
	}

	return b.sendText(msg.Chat.ID, "Use /menu to browse restaurants or /cart to view your cart.")
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) error {
	if cq.Message == nil || cq.From == nil {
		return nil
	}

	switch cq.Data {
	case DataBackRestaurants:
		return b.cbBackRestaurants(cq)
	case DataMyOrders:
		return b.cbMyOrders(cq)
	case DataNoop:
		return b.answer(cq, "")
	}

	cb, err := DecodeCallback(cq.Data)
	if err != nil {
		return b.answer(cq, "")
	}
	if handler, ok := b.callbacks[cb.Kind]; ok {
		return handler(cq, cb)
	}
	return b.answer(cq, "")
}

// requireUser resolves the registered user behind a callback, alerting the
// caller to /start the bot first when there is none.
func (b *Bot) requireUser(cq *tgbotapi.CallbackQuery) (*entity.User, error) {
	user, err := b.users.ByTelegramID(cq.From.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, b.alert(cq, "Please /start the bot first")
	}
	return user, nil
}

// ---------------- send helpers ----------------

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = kb
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) editText(cq *tgbotapi.CallbackQuery, text string) error {
	edit := tgbotapi.NewEditMessageText(cq.Message.Chat.ID, cq.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(edit)
	return err
}

func (b *Bot) editWithKeyboard(cq *tgbotapi.CallbackQuery, text string, kb tgbotapi.InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageTextAndMarkup(cq.Message.Chat.ID, cq.Message.MessageID, text, kb)
	edit.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(edit)
	return err
}

func (b *Bot) answer(cq *tgbotapi.CallbackQuery, text string) error {
	_, err := b.api.Request(tgbotapi.NewCallback(cq.ID, text))
	return err
}

func (b *Bot) alert(cq *tgbotapi.CallbackQuery, text string) error {
	_, err := b.api.Request(tgbotapi.NewCallbackWithAlert(cq.ID, text))
	return err
}
