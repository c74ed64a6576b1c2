package services

import (
	"strings"
	"sync"

	"foodbot/entity"
	"foodbot/repository"
)

// Conversation states for the multi-step checkout intake. The state lives
// here, keyed by user, independent of whichever transport feeds it text.
type convState int

const (
	stateCollectingAddress convState = iota
	stateCollectingPhone
	stateAwaitingConfirmation
)

type conversation struct {
	state   convState
	address string
	phone   string
}

// CheckoutStep tells the transport what to render next.
type CheckoutStep int

const (
	StepAskAddress CheckoutStep = iota
	StepAskPhone
	StepConfirm
	StepCommitted
	StepCancelled
)

type CheckoutSummary struct {
	Lines   []repository.CartLine
	Total   int64
	Address string
	Phone   string
}

type CheckoutPrompt struct {
	Step    CheckoutStep
	Summary *CheckoutSummary // set for StepConfirm
	Order   *entity.Order    // set for StepCommitted
}

var confirmTokens = map[string]bool{"yes": true, "da": true, "confirm": true}

type CheckoutService struct {
	Cart   *CartService
	Orders *OrderService

	mu    sync.Mutex
	convs map[uint]*conversation
}

func NewCheckoutService(cart *CartService, orders *OrderService) *CheckoutService {
	return &CheckoutService{Cart: cart, Orders: orders, convs: make(map[uint]*conversation)}
}

// Begin starts a conversation for the user. Saved contact info short-circuits
// the matching collection steps; with both on file the user lands directly on
// the confirmation.
func (s *CheckoutService) Begin(user *entity.User) (*CheckoutPrompt, error) {
	lines, err := s.Cart.Items(user.ID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	conv := &conversation{}
	switch {
	case user.DeliveryAddress != "" && user.Phone != "":
		conv.address = user.DeliveryAddress
		conv.phone = user.Phone
		conv.state = stateAwaitingConfirmation
	case user.DeliveryAddress != "":
		conv.address = user.DeliveryAddress
		conv.state = stateCollectingPhone
	default:
		conv.state = stateCollectingAddress
	}

	s.mu.Lock()
	s.convs[user.ID] = conv
	s.mu.Unlock()

	return s.promptFor(user.ID, conv, lines)
}

// Input feeds one user message into the active conversation.
func (s *CheckoutService) Input(user *entity.User, text string) (*CheckoutPrompt, error) {
	s.mu.Lock()
	conv, ok := s.convs[user.ID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoActiveConversation
	}

	text = strings.TrimSpace(text)

	switch conv.state {
	case stateCollectingAddress:
		conv.address = text
		if user.Phone != "" {
			conv.phone = user.Phone
			conv.state = stateAwaitingConfirmation
		} else {
			conv.state = stateCollectingPhone
			return &CheckoutPrompt{Step: StepAskPhone}, nil
		}

	case stateCollectingPhone:
		conv.phone = text
		conv.state = stateAwaitingConfirmation

	case stateAwaitingConfirmation:
		s.drop(user.ID)
		if !confirmTokens[strings.ToLower(text)] {
			// anything but an affirmative cancels; the cart stays intact
			return &CheckoutPrompt{Step: StepCancelled}, nil
		}
		order, err := s.Orders.Checkout(user.ID, conv.address, conv.phone, "")
		if err != nil {
			return nil, err
		}
		return &CheckoutPrompt{Step: StepCommitted, Order: order}, nil
	}

	lines, err := s.Cart.Items(user.ID)
	if err != nil {
		return nil, err
	}
	return s.promptFor(user.ID, conv, lines)
}

// Active reports whether the user has a checkout in progress.
func (s *CheckoutService) Active(userID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.convs[userID]
	return ok
}

// Abort discards the conversation, leaving the cart untouched.
func (s *CheckoutService) Abort(userID uint) {
	s.drop(userID)
}

func (s *CheckoutService) drop(userID uint) {
	s.mu.Lock()
	delete(s.convs, userID)
	s.mu.Unlock()
}

func (s *CheckoutService) promptFor(userID uint, conv *conversation, lines []repository.CartLine) (*CheckoutPrompt, error) {
	switch conv.state {
	case stateCollectingAddress:
		return &CheckoutPrompt{Step: StepAskAddress}, nil
	case stateCollectingPhone:
		return &CheckoutPrompt{Step: StepAskPhone}, nil
	}

	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return &CheckoutPrompt{
		Step: StepConfirm,
		Summary: &CheckoutSummary{
			Lines:   lines,
			Total:   total,
			Address: conv.address,
			Phone:   conv.phone,
		},
	}, nil
}
