// Package qrtoken encodes and authenticates the short token printed on a
// volunteer badge. A token is "participantID|eventID|checksum" where the
// checksum is a 6-char HMAC digest over the pair with a shared secret, so a
// scanned badge can be verified offline without a session.
package qrtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base32"
	"errors"
	"strings"
)

const (
	separator   = "|"
	checksumLen = 6
)

// ErrFormat marks a token that does not have exactly three segments.
// It is distinct from a checksum mismatch, which Validate reports as false.
var ErrFormat = errors.New("badge token: malformed token")

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

type Codec struct {
	secret []byte
}

func New(secret string) Codec {
	return Codec{secret: []byte(secret)}
}

// Checksum returns the order-sensitive digest of (participantID, eventID).
func (c Codec) Checksum(participantID, eventID string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(participantID + separator + eventID))
	return b32.EncodeToString(mac.Sum(nil))[:checksumLen]
}

// Encode builds the scannable token for a badge.
func (c Codec) Encode(participantID, eventID string) string {
	return participantID + separator + eventID + separator + c.Checksum(participantID, eventID)
}

// Parse splits a token into its three segments. Any other segment count is a
// format error; checksum verification is Validate's job.
func (c Codec) Parse(token string) (participantID, eventID, checksum string, err error) {
	parts := strings.Split(token, separator)
	if len(parts) != 3 {
		return "", "", "", ErrFormat
	}
	return parts[0], parts[1], parts[2], nil
}

// Validate recomputes the checksum and compares in constant time. Empty or
// malformed input is simply invalid; this never panics and never errors.
func (c Codec) Validate(participantID, eventID, checksum string) bool {
	if participantID == "" || eventID == "" || len(checksum) != checksumLen {
		return false
	}
	want := c.Checksum(participantID, eventID)
	return subtle.ConstantTimeCompare([]byte(want), []byte(checksum)) == 1
}
