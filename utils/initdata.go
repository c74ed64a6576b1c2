package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strings"
)

// ValidateInitData checks the signed Telegram WebApp handshake. The check
// string is every key=value pair except "hash", alphabetically sorted and
// newline-joined; the key is HMAC-SHA256("WebAppData", botToken). Returns the
// parsed fields and whether the signature held up.
func ValidateInitData(initData, botToken string) (url.Values, bool) {
	parsed, err := url.ParseQuery(initData)
	if err != nil {
		return nil, false
	}
	received := parsed.Get("hash")
	if received == "" {
		return nil, false
	}
	parsed.Del("hash")

	keys := make([]string, 0, len(parsed))
	for k := range parsed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+parsed.Get(k))
	}
	checkString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	calculated := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(calculated), []byte(received)) {
		return nil, false
	}
	return parsed, true
}

// InitDataUserID pulls the telegram user id out of the JSON-encoded "user"
// field of validated init data. Zero means no user.
func InitDataUserID(data url.Values) int64 {
	raw := data.Get("user")
	if raw == "" {
		return 0
	}
	var u struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return 0
	}
	return u.ID
}
