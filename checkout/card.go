package checkout

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Card carries the raw credit-card fields from the checkout form.
// They are validated, never charged or stored.
type Card struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
}

var (
	ErrCardNumber = errors.New("card number must be exactly 16 digits")
	ErrCardExpiry = errors.New("expiry must be MM/YY and not in the past")
	ErrCardCVV    = errors.New("cvv must be exactly 3 digits")
)

// ValidateCard checks the card fields against the current time.
// The expiry is valid through the end of its month.
func ValidateCard(c Card, now time.Time) error {
	if !allDigits(c.Number) || len(c.Number) != 16 {
		return ErrCardNumber
	}
	month, year, ok := parseExpiry(c.Expiry)
	if !ok {
		return ErrCardExpiry
	}
	if year*100+month < now.Year()*100+int(now.Month()) {
		return ErrCardExpiry
	}
	if !allDigits(c.CVV) || len(c.CVV) != 3 {
		return ErrCardCVV
	}
	return nil
}

// parseExpiry parses "MM/YY" into a month in [1,12] and a full year.
func parseExpiry(s string) (month, year int, ok bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return m, 2000 + y, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
