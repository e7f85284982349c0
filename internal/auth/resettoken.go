package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ResetTokenGenerator derives password-reset credentials from account state
// instead of persisting them. The token is an HMAC over the user ID, the
// current password hash and an issue timestamp, so it self-invalidates the
// moment the password changes, and a fixed validity window bounds its life.
type ResetTokenGenerator struct {
	secret  []byte
	timeout time.Duration
}

func NewResetTokenGenerator(secret string, timeout time.Duration) *ResetTokenGenerator {
	return &ResetTokenGenerator{
		secret:  []byte(secret),
		timeout: timeout,
	}
}

// MakeToken derives a reset credential for the account identified by userID
// with the given current password hash. Format: "<ts_base36>-<hmac_hex>".
func (g *ResetTokenGenerator) MakeToken(userID, passwordHash string) string {
	return g.makeTokenAt(userID, passwordHash, time.Now())
}

func (g *ResetTokenGenerator) makeTokenAt(userID, passwordHash string, now time.Time) string {
	ts := now.Unix()
	return fmt.Sprintf("%s-%s", strconv.FormatInt(ts, 36), g.signature(userID, passwordHash, ts))
}

// CheckToken validates a reset credential against the account's current
// state. It fails when the token is malformed, forged, issued before a
// password change, or older than the validity window.
func (g *ResetTokenGenerator) CheckToken(userID, passwordHash, token string) bool {
	return g.checkTokenAt(userID, passwordHash, token, time.Now())
}

func (g *ResetTokenGenerator) checkTokenAt(userID, passwordHash, token string, now time.Time) bool {
	tsPart, sigPart, ok := strings.Cut(token, "-")
	if !ok {
		return false
	}

	ts, err := strconv.ParseInt(tsPart, 36, 64)
	if err != nil {
		return false
	}

	want := g.signature(userID, passwordHash, ts)
	if !hmac.Equal([]byte(want), []byte(sigPart)) {
		return false
	}

	issued := time.Unix(ts, 0)
	if issued.After(now) {
		return false
	}
	return now.Sub(issued) <= g.timeout
}

func (g *ResetTokenGenerator) signature(userID, passwordHash string, ts int64) string {
	mac := hmac.New(sha256.New, g.secret)
	fmt.Fprintf(mac, "%s|%s|%d", userID, passwordHash, ts)
	return hex.EncodeToString(mac.Sum(nil))
}

// EncodeUID renders a user ID for use in reset links (uidb64).
func EncodeUID(userID string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(userID))
}

// DecodeUID reverses EncodeUID.
func DecodeUID(encoded string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
