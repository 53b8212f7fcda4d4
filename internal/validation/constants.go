package validation

import (
	"regexp"

	"pullapi/internal/models"
)

// Document types accepted for sender and receiver identification.
var IdentifierTypes = []string{
	"Driving licence", "ID Card", "Identity card", "Passport",
}

// Destination corridors open per transfer kind. Deposits require a bank
// network on the receiving side, so the pickup list is wider.
var (
	DepositCountries = []string{
		"FR", "DE", "ES", "IT", "GR", "PT", "NL", "GE", "UA", "MD", "IN", "PH", "CN",
	}
	PickupCountries = []string{
		"FR", "DE", "ES", "IT", "GR", "PT", "NL", "GE", "UA", "MD", "IN", "PH", "CN",
		"TH", "LK", "NP", "VN", "ET", "ER",
	}
)

var SourceCurrencies = []string{
	models.CurrencyILS,
	models.CurrencyUSD,
	models.CurrencyHKD,
	models.CurrencyEUR,
}

var TargetCurrencies = []string{
	models.CurrencyUSD,
	models.CurrencyEUR,
	models.CurrencyLocal,
}

var PaymentTypes = []string{
	models.PaymentTypeBankWire,
	models.PaymentTypeCreditCard,
	models.PaymentTypeWPay,
}

var (
	// amountRegex admits a positive decimal amount, e.g. "500", "12.75"
	// or "05", but not "007", "0" or "0.5". The odd edges are part of the
	// established contract with clients and stay as is.
	amountRegex = regexp.MustCompile(`^((1?1?\.([1-9]\d*|0[1-9]\d*))|(([1-9]|0[1-9])\d*(\.\d+)?))$`)

	// dateRegex pins dates to strict YYYY-MM-DD.
	dateRegex = regexp.MustCompile(`^([1-2][0-9]{3})-(0[1-9]|1[0-2])-(0[1-9]|[1-2][0-9]|3[0-1])$`)

	numericRegex = regexp.MustCompile(`^[0-9]+$`)
)
