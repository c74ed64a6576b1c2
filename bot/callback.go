package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Callback data kinds. Telegram caps callback payloads at 64 bytes, so the
// encoding is a short prefix plus colon-joined integer fields.
const (
	KindRestaurant = "rest"  // rest:<restaurantID>
	KindCategory   = "cat"   // cat:<categoryID>:<restaurantID>
	KindProduct    = "prod"  // prod:<productID>
	KindAddToCart  = "add"   // add:<productID>
	KindCartAction = "cart"  // cart:<action>:<itemID>
	KindOrder      = "order" // order:<orderID>
	KindOrderAct   = "oa"    // oa:<action>:<orderID>

	// bare sentinels without fields
	DataBackRestaurants = "back_restaurants"
	DataMyOrders        = "my_orders"
	DataNoop            = "noop"
)

var errBadCallback = errors.New("malformed callback data")

// CallbackData is the tagged payload carried on inline keyboard buttons.
type CallbackData struct {
	Kind   string
	Action string // cart / oa kinds only
	ID     uint   // primary entity id
	Extra  uint   // category kind: owning restaurant id
}

func (cb CallbackData) Encode() string {
	switch cb.Kind {
	case KindCategory:
		return fmt.Sprintf("%s:%d:%d", cb.Kind, cb.ID, cb.Extra)
	case KindCartAction, KindOrderAct:
		return fmt.Sprintf("%s:%s:%d", cb.Kind, cb.Action, cb.ID)
	default:
		return fmt.Sprintf("%s:%d", cb.Kind, cb.ID)
	}
}

func DecodeCallback(data string) (CallbackData, error) {
	parts := strings.Split(data, ":")
	cb := CallbackData{Kind: parts[0]}

	switch cb.Kind {
	case KindRestaurant, KindProduct, KindAddToCart, KindOrder:
		if len(parts) != 2 {
			return cb, errBadCallback
		}
		id, err := parseID(parts[1])
		if err != nil {
			return cb, err
		}
		cb.ID = id

	case KindCategory:
		if len(parts) != 3 {
			return cb, errBadCallback
		}
		id, err := parseID(parts[1])
		if err != nil {
			return cb, err
		}
		extra, err := parseID(parts[2])
		if err != nil {
			return cb, err
		}
		cb.ID, cb.Extra = id, extra

	case KindCartAction, KindOrderAct:
		if len(parts) != 3 {
			return cb, errBadCallback
		}
		id, err := parseID(parts[2])
		if err != nil {
			return cb, err
		}
		cb.Action, cb.ID = parts[1], id

	default:
		return cb, errBadCallback
	}
	return cb, nil
}

func parseID(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errBadCallback
	}
	return uint(v), nil
}
