// Package webapp validates Telegram WebApp init data. The dashboard sends
// the raw init data string with every privileged request; it is verified
// against the bot token on each request, never cached.
package webapp

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

var (
	// ErrMissingSignature means the payload carries no hash field.
	ErrMissingSignature = errors.New("init data has no hash")
	// ErrBadSignature means the hash does not match the payload.
	ErrBadSignature = errors.New("init data signature mismatch")
	// ErrNoCallerID means the user field is absent or malformed.
	ErrNoCallerID = errors.New("init data has no user id")
	// ErrForbidden means the caller is authenticated but not an admin.
	ErrForbidden = errors.New("caller is not an admin")
)

// webAppUser is the subset of the embedded user JSON we care about.
type webAppUser struct {
	ID int64 `json:"id"`
}

// ValidateInitData verifies the init data signature against botToken and
// returns the embedded caller id.
//
// The check follows the Telegram WebApp protocol: drop the hash field,
// join the remaining fields sorted by key as "key=value" lines, then
// compare HMAC-SHA256(HMAC-SHA256("WebAppData", botToken), lines) with
// the provided hash in constant time.
func ValidateInitData(initData, botToken string) (int64, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadSignature, err)
	}

	hash := values.Get("hash")
	if hash == "" {
		return 0, ErrMissingSignature
	}
	values.Del("hash")

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}
	checkString := strings.Join(lines, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(hash)) {
		return 0, ErrBadSignature
	}

	var user webAppUser
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil || user.ID == 0 {
		return 0, ErrNoCallerID
	}
	return user.ID, nil
}

// Authenticator gates privileged requests on a valid signature plus
// membership in the admin allow-set.
type Authenticator struct {
	botToken string
	admins   map[int64]bool
}

// NewAuthenticator creates an Authenticator for the given admin ids.
func NewAuthenticator(botToken string, adminIDs []int64) *Authenticator {
	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}
	return &Authenticator{botToken: botToken, admins: admins}
}

// Authenticate validates initData and returns the caller id if it belongs
// to an admin. Returns ErrForbidden for valid signatures from non-admins.
func (a *Authenticator) Authenticate(initData string) (int64, error) {
	id, err := ValidateInitData(initData, a.botToken)
	if err != nil {
		return 0, err
	}
	if !a.admins[id] {
		return 0, ErrForbidden
	}
	return id, nil
}
