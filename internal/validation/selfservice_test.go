package validation

import (
	"testing"
	"time"

	"pullapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() models.Submission {
	tt := "BANK"
	return models.Submission{
		ReceivingCountry: "FR",
		Currency:         models.CurrencyPair{Source: "EUR", Target: "EUR"},
		TransferType:     &tt,
		Amount:           "500",
		ReceiptNO:        "RCPT-1001",
		Sender: models.Party{
			Name:             models.PersonName{First: "John", Last: "Doe"},
			Identifier:       "X1234567",
			IdentifierType:   "Passport",
			IdentifierExpire: "2031-01-01",
			BirthDate:        "1980-05-12",
			Address:          "1 Rue de Test",
			City:             "Paris",
			PhoneNumber:      "+33123456789",
			Resident:         "FR",
		},
		Receiver: models.Party{
			Name:           models.PersonName{First: "Jane", Last: "Doe"},
			Identifier:     "Y7654321",
			IdentifierType: "ID Card",
			Address:        "2 Rue de Test",
			City:           "lyon",
			PhoneNumber:    "+33987654321",
			Resident:       "FR",
		},
	}
}

func TestNormalize(t *testing.T) {
	sub := validSubmission()
	sub.ReceivingCountry = "fr"
	sub.Currency.Source = "eur"
	sub.Currency.Target = "usd"
	sub.Receiver.City = "Lyon"
	sub.Sender.Resident = "fr"
	sub.Sender.Name.First = "O'Brien-Smith"
	sub.Sender.Name.Last = "D/Souza"

	got := Normalize(sub)

	assert.Equal(t, "FR", got.ReceivingCountry)
	assert.Equal(t, "EUR", got.Currency.Source)
	assert.Equal(t, "USD", got.Currency.Target)
	assert.Equal(t, "lyon", got.Receiver.City)
	assert.Equal(t, "FR", got.Sender.Resident)
	assert.Equal(t, "OBrienSmith", got.Sender.Name.First)
	assert.Equal(t, "DSouza", got.Sender.Name.Last)

	// The input itself stays untouched.
	assert.Equal(t, "O'Brien-Smith", sub.Sender.Name.First)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	sub := validSubmission()
	sub.Sender.Name.First = "O'Brien-Smith"
	sub.ReceivingCountry = "fr"
	sub.Receiver.City = "LYON"

	once := Normalize(sub)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeKeepsLocalCurrencySentinel(t *testing.T) {
	sub := validSubmission()
	sub.Currency.Target = models.CurrencyLocal

	got := Normalize(sub)

	assert.Equal(t, models.CurrencyLocal, got.Currency.Target)
}

func TestValidateSubmission_Valid(t *testing.T) {
	sub := validSubmission()
	v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit})

	assert.True(t, v.Valid(), "unexpected errors: %v", v.Errors)
}

func TestValidateSubmission_AmountFormat(t *testing.T) {
	tests := []struct {
		amount string
		valid  bool
	}{
		{"500", true},
		{"1000", true},
		{"12.75", true},
		{"0.5", false},
		{"05", true},
		{"007", false},
		{"-5", false},
		{"0", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			sub := validSubmission()
			sub.Amount = tt.amount
			v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit})
			_, hasErr := v.Errors["amount"]
			assert.Equal(t, !tt.valid, hasErr, "amount %q", tt.amount)
		})
	}
}

func TestValidateSubmission_ReceiptUniqueness(t *testing.T) {
	sub := validSubmission()
	sub.ReceiptNO = "RCPT-1001"

	v := ValidateSubmission(&sub, Options{
		Kind:             models.KindDeposit,
		ExistingReceipts: []string{"RCPT-0999", "RCPT-1001"},
	})

	require.False(t, v.Valid())
	assert.Equal(t, "has already been used", v.Errors["receiptNO"])
}

func TestValidateSubmission_IdentifierType(t *testing.T) {
	sub := validSubmission()
	sub.Sender.IdentifierType = "Library card"

	v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit})

	require.False(t, v.Valid())
	assert.Contains(t, v.Errors, "sender.identifierType")
}

func TestValidateSubmission_ExpiredDocument(t *testing.T) {
	today := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expire string
		valid  bool
	}{
		{"future date", "2027-01-01", true},
		{"expires today", "2026-08-29", false},
		{"already expired", "2020-01-01", false},
		{"malformed", "2027-1-1", false},
		{"not a date", "soon", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			sub.Sender.IdentifierExpire = tt.expire
			v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit, Today: today})
			_, hasErr := v.Errors["sender.identifierExpire"]
			assert.Equal(t, !tt.valid, hasErr)
		})
	}
}

func TestValidateSubmission_BirthDate(t *testing.T) {
	sub := validSubmission()
	sub.Sender.BirthDate = "1900-01-01"

	v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit})

	require.False(t, v.Valid())
	assert.Contains(t, v.Errors, "sender.birthDate")
}

func TestValidateSubmission_CurrencyAllowLists(t *testing.T) {
	t.Run("target rejects source-only currency", func(t *testing.T) {
		sub := validSubmission()
		sub.Currency.Target = models.CurrencyILS
		v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit})
		assert.Contains(t, v.Errors, "currency.target")
	})

	t.Run("source rejects local sentinel", func(t *testing.T) {
		sub := validSubmission()
		sub.Currency.Source = models.CurrencyLocal
		v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit})
		assert.Contains(t, v.Errors, "currency.source")
	})

	t.Run("local sentinel allowed as target", func(t *testing.T) {
		sub := validSubmission()
		sub.Currency.Target = models.CurrencyLocal
		v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit})
		assert.NotContains(t, v.Errors, "currency.target")
	})
}

func TestValidateSubmission_TransferTypeByKind(t *testing.T) {
	t.Run("deposit may omit transfer type", func(t *testing.T) {
		sub := validSubmission()
		sub.TransferType = nil
		v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit})
		assert.True(t, v.Valid(), "unexpected errors: %v", v.Errors)
	})

	t.Run("pickup requires transfer type", func(t *testing.T) {
		sub := validSubmission()
		sub.TransferType = nil
		v := ValidateSubmission(&sub, Options{Kind: models.KindPickup})
		assert.Contains(t, v.Errors, "transferType")
	})
}

func TestValidateSubmission_WebsiteRules(t *testing.T) {
	websiteSub := func() models.Submission {
		sub := validSubmission()
		sub.IsWebsite = true
		sub.PaymentType = models.PaymentTypeWPay
		sub.Nature = `{"purpose":"family support"}`
		return sub
	}

	t.Run("payment type required", func(t *testing.T) {
		sub := websiteSub()
		sub.PaymentType = ""
		v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit, IsWebsite: true})
		assert.Contains(t, v.Errors, "paymentType")
	})

	t.Run("bank wire requires bank details", func(t *testing.T) {
		sub := websiteSub()
		sub.PaymentType = models.PaymentTypeBankWire
		v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit, IsWebsite: true})
		assert.Contains(t, v.Errors, "sender.bankWireInfo")
	})

	t.Run("bank wire account number must be numeric", func(t *testing.T) {
		sub := websiteSub()
		sub.PaymentType = models.PaymentTypeBankWire
		sub.Sender.BankWireInfo = &models.BankWireInfo{
			BankOwnerName: "John Doe",
			AccountNumber: "12AB34",
			BankName:      "Test Bank",
			Branch:        "001",
		}
		v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit, IsWebsite: true})
		assert.Contains(t, v.Errors, "sender.bankWireInfo.accountNumber")
	})

	t.Run("nature must be json", func(t *testing.T) {
		sub := websiteSub()
		sub.Nature = "not json"
		v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit, IsWebsite: true})
		assert.Contains(t, v.Errors, "nature")
	})

	t.Run("w_pay submission passes", func(t *testing.T) {
		sub := websiteSub()
		v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit, IsWebsite: true})
		assert.True(t, v.Valid(), "unexpected errors: %v", v.Errors)
	})

	t.Run("non-website ignores payment rules", func(t *testing.T) {
		sub := validSubmission()
		v := ValidateSubmission(&sub, Options{Kind: models.KindDeposit, IsWebsite: false})
		assert.NotContains(t, v.Errors, "paymentType")
		assert.NotContains(t, v.Errors, "nature")
	})
}
