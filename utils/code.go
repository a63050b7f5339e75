package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateCode returns a random uppercase alphanumeric code of the given
// length. The alphabet omits easily confused characters (0/O, 1/I).
func GenerateCode(length int) (string, error) {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", err
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// GenerateTokenNumber builds the customer-facing order token from the last
// six digits of the current unix-millisecond clock. Tokens are only
// day-to-day readable identifiers; they are not unique across restarts.
func GenerateTokenNumber() string {
	millis := time.Now().UnixMilli()
	return fmt.Sprintf("T-%06d", millis%1000000)
}

// GenerateBillNumber returns a candidate bill number. Callers must check
// for collisions and regenerate on a duplicate.
func GenerateBillNumber() (string, error) {
	code, err := GenerateCode(8)
	if err != nil {
		return "", err
	}
	return "B-" + code, nil
}
