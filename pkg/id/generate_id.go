package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// newRefNumber builds a human-readable reference like APP-20250131-1A2B3C.
func newRefNumber(prefix string, now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format("20060102"), suffix)
}

// NewApplicationNumber returns a human-readable loan application number.
func NewApplicationNumber(now time.Time) string { return newRefNumber("APP", now) }

// NewOfferNumber returns a human-readable offer letter number.
func NewOfferNumber(now time.Time) string { return newRefNumber("OFR", now) }
