package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   CallbackData
		want string
	}{
		{"restaurant", CallbackData{Kind: KindRestaurant, ID: 7}, "rest:7"},
		{"category", CallbackData{Kind: KindCategory, ID: 12, Extra: 3}, "cat:12:3"},
		{"product", CallbackData{Kind: KindProduct, ID: 42}, "prod:42"},
		{"add to cart", CallbackData{Kind: KindAddToCart, ID: 42}, "add:42"},
		{"cart remove", CallbackData{Kind: KindCartAction, Action: "remove", ID: 5}, "cart:remove:5"},
		{"cart checkout", CallbackData{Kind: KindCartAction, Action: "checkout", ID: 0}, "cart:checkout:0"},
		{"order detail", CallbackData{Kind: KindOrder, ID: 99}, "order:99"},
		{"order cancel", CallbackData{Kind: KindOrderAct, Action: "cancel", ID: 99}, "oa:cancel:99"},
		{"admin confirm", CallbackData{Kind: KindOrderAct, Action: "confirm", ID: 99}, "oa:confirm:99"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := tc.in.Encode()
			assert.Equal(t, tc.want, encoded)
			assert.LessOrEqual(t, len(encoded), 64)

			decoded, err := DecodeCallback(encoded)
			require.NoError(t, err)
			assert.Equal(t, tc.in, decoded)
		})
	}
}

func TestDecodeCallbackRejectsMalformed(t *testing.T) {
	for _, data := range []string{
		"",
		"bogus:1",
		"rest",
		"rest:1:2",
		"rest:abc",
		"cat:1",
		"cat:1:x",
		"cart:remove",
		"oa:cancel:nope",
		"rest:-1",
	} {
		t.Run(data, func(t *testing.T) {
			_, err := DecodeCallback(data)
			assert.Error(t, err)
		})
	}
}
