package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateOrderNumber produces a human-friendly order number of the form
// SP-yymmdd-XXXXXX, where XXXXXX is a random upper-case hex suffix. The
// number is for people; uniqueness is enforced by the order id.
func GenerateOrderNumber(now time.Time) (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate order number: %w", err)
	}
	return fmt.Sprintf("SP-%s-%s", now.Format("060102"), strings.ToUpper(hex.EncodeToString(buf))), nil
}
