// Package cards tokenizes the card details a website submission carries
// when the CREDIT_CARD payment type is selected. The processing system
// only ever sees the token, never the card number.
package cards

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"pullapi/internal/config"
	"pullapi/internal/models"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/token"
)

var (
	ErrInvalidCardNumber = errors.New("invalid card number: failed Luhn check")
	ErrInvalidExpiry     = errors.New("card is expired or has invalid expiry date")
)

// Stripe test card numbers and the tokens they map to.
var testCards = map[string]string{
	"4242424242424242": "tok_visa",
	"4000056655665556": "tok_visa_debit",
	"5555555555554444": "tok_mastercard",
	"5200828282828210": "tok_mastercard_debit",
	"378282246310005":  "tok_amex",
}

type Service interface {
	Tokenize(ctx context.Context, card models.CardInfo) (string, error)
}

type service struct {
	newToken func(params *stripe.TokenParams) (*stripe.Token, error)
}

func NewService() Service {
	stripe.Key = config.GetEnv("STRIPE_SECRET_KEY", "")
	return &service{newToken: token.New}
}

// Tokenize returns the token for the submitted card. Pre-tokenized input
// passes through; test card numbers map to their Stripe test tokens; raw
// PANs are validated locally and then tokenized through Stripe.
func (s *service) Tokenize(_ context.Context, card models.CardInfo) (string, error) {
	if card.Token != "" {
		return card.Token, nil
	}
	if strings.HasPrefix(card.Number, "tok_") {
		return card.Number, nil
	}

	if token, ok := testCards[card.Number]; ok {
		return token, nil
	}

	if !isValidCardNumber(card.Number) {
		return "", ErrInvalidCardNumber
	}

	month, err := strconv.Atoi(card.ExpiryMonth)
	if err != nil {
		return "", ErrInvalidExpiry
	}
	year, err := strconv.Atoi(card.ExpiryYear)
	if err != nil {
		return "", ErrInvalidExpiry
	}
	if !isValidExpiryDate(month, year) {
		return "", ErrInvalidExpiry
	}

	params := &stripe.TokenParams{
		Card: &stripe.CardParams{
			Number:   &card.Number,
			ExpMonth: &card.ExpiryMonth,
			ExpYear:  &card.ExpiryYear,
		},
	}
	if card.CVV != "" {
		params.Card.CVC = &card.CVV
	}

	stripeToken, err := s.newToken(params)
	if err != nil {
		log.Printf("stripe tokenization error: %v", err)
		return "", fmt.Errorf("stripe tokenization failed: %w", err)
	}

	return stripeToken.ID, nil
}

func isValidCardNumber(cardNumber string) bool {
	if cardNumber == "" {
		return false
	}

	var sum int
	shouldDouble := false

	for i := len(cardNumber) - 1; i >= 0; i-- {
		if cardNumber[i] < '0' || cardNumber[i] > '9' {
			return false
		}
		digit := int(cardNumber[i] - '0')
		if shouldDouble {
			digit = digit * 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		shouldDouble = !shouldDouble
	}

	return sum%10 == 0
}

func isValidExpiryDate(month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}

	currentYear, currentMonth, _ := time.Now().Date()
	if year < currentYear || (year == currentYear && month < int(currentMonth)) {
		return false
	}

	return true
}
