// Package tokens issues the signed, time-limited tokens used in activation
// links. A token is bound to an entity's current mutable state: once that
// state changes (a user activates, a subforum is approved) every outstanding
// token for the entity stops verifying.
package tokens

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

type Generator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewGenerator(secret string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Make builds a token for the entity identified by id whose mutable state is
// summarized by fingerprint.
func (g *Generator) Make(id string, fingerprint string) string {
	ts := g.now().Unix()
	return fmt.Sprintf("%s-%s", strconv.FormatInt(ts, 36), g.sign(id, fingerprint, ts))
}

// Check reports whether token is a valid, unexpired token for the entity's
// current state. All failure modes collapse to false.
func (g *Generator) Check(id string, fingerprint string, token string) bool {
	tsPart, sig, ok := strings.Cut(token, "-")
	if !ok {
		return false
	}
	ts, err := strconv.ParseInt(tsPart, 36, 64)
	if err != nil {
		return false
	}
	now := g.now()
	if ts > now.Unix() || now.Sub(time.Unix(ts, 0)) > g.ttl {
		return false
	}
	expected := g.sign(id, fingerprint, ts)
	return hmac.Equal([]byte(sig), []byte(expected))
}

func (g *Generator) sign(id, fingerprint string, ts int64) string {
	mac := hmac.New(sha256.New, g.secret)
	fmt.Fprintf(mac, "%s\x00%s\x00%d", id, fingerprint, ts)
	return hex.EncodeToString(mac.Sum(nil))
}

// EncodeID produces the opaque entity reference carried in activation URLs.
func EncodeID(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

// DecodeID reverses EncodeID.
func DecodeID(encoded string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
