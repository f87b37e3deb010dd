package util

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// OTPAlphabet omits 0/O/1/I so codes stay unambiguous when read from an
// email on a phone screen. L stays in: the set is fixed at 32 symbols and
// codes are always uppercase, so it cannot be mistaken for 1.
const OTPAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func GenerateOTP(length int) (string, error) {
	if length <= 0 {
		length = 6
	}
	max := big.NewInt(int64(len(OTPAlphabet)))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(OTPAlphabet[n.Int64()])
	}
	return builder.String(), nil
}
