package order

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// orderNumberPrefix is the brand prefix on every order number
const orderNumberPrefix = "YSQ"

const suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const suffixLength = 4

// NumberGenerator produces human-readable order numbers.
// A func type so tests can substitute a deterministic generator.
type NumberGenerator func() string

// GenerateNumber returns an order number of the form
// YSQ-<year>-<base36 millis><4 random chars>, e.g. YSQ-2026-MF3K2A7QX9TZ.
// The timestamp keeps numbers roughly sortable; the random suffix keeps
// concurrent checkouts from colliding within the same millisecond.
func GenerateNumber() string {
	now := time.Now()
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return fmt.Sprintf("%s-%d-%s%s", orderNumberPrefix, now.Year(), ts, randomSuffix())
}

func randomSuffix() string {
	buf := make([]byte, suffixLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to time bits
		nano := time.Now().UnixNano()
		for i := range buf {
			buf[i] = byte(nano >> (i * 8))
		}
	}
	out := make([]byte, suffixLength)
	for i, b := range buf {
		out[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}
	return string(out)
}
