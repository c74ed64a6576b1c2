package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebAppMenuKeyboardIsURLButton(t *testing.T) {
	kb := webAppMenuKeyboard("https://shop.example")

	require.Len(t, kb.InlineKeyboard, 1)
	require.Len(t, kb.InlineKeyboard[0], 1)

	btn := kb.InlineKeyboard[0][0]
	assert.Equal(t, "Open Mini App", btn.Text)
	require.NotNil(t, btn.URL)
	assert.Equal(t, "https://shop.example/webapp", *btn.URL)
}
