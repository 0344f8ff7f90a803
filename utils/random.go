package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// referencePrefix is the stable prefix of every booking reference.
const referencePrefix = "CS"

// seatLabelMax mirrors the historical label space (S001..S500).
const seatLabelMax = 500

// GenerateDigits returns length decimal digits read from crypto/rand.
func GenerateDigits(length int) (string, error) {
	const charset = "0123456789"

	code := make([]byte, length)
	if _, err := rand.Read(code); err != nil {
		return "", err
	}

	for i := 0; i < length; i++ {
		code[i] = charset[int(code[i])%len(charset)]
	}

	return string(code), nil
}

// GenerateBookingReference builds a human-shareable reference of the form
// CS<yyyymmdd><4 digits>. Collisions are possible but rare; the unique index
// on the tickets collection turns one into a retryable error.
func GenerateBookingReference(now time.Time) (string, error) {
	suffix, err := GenerateDigits(4)
	if err != nil {
		return "", err
	}
	return referencePrefix + now.Format("20060102") + suffix, nil
}

// GenerateSeatLabels returns one decorative label per seat, e.g. "S042".
// Labels are display strings only: uniqueness across tickets is NOT
// guaranteed and nothing enforces real seat assignment.
func GenerateSeatLabels(quantity int) ([]string, error) {
	labels := make([]string, 0, quantity)
	for i := 0; i < quantity; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(seatLabelMax))
		if err != nil {
			return nil, err
		}
		labels = append(labels, fmt.Sprintf("S%03d", n.Int64()+1))
	}
	return labels, nil
}
