package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var randInt = func(max int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}

// GenerateTicketNumber produces a support ticket number in the form
// TK-NNNNNN-NNNN.
func GenerateTicketNumber() (string, error) {
	head, err := randInt(1000000)
	if err != nil {
		return "", fmt.Errorf("failed to generate ticket number: %w", err)
	}
	tail, err := randInt(10000)
	if err != nil {
		return "", fmt.Errorf("failed to generate ticket number: %w", err)
	}
	return fmt.Sprintf("TK-%06d-%04d", head, tail), nil
}
