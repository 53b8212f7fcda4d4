package models

import "strconv"

// Currency codes accepted on self-service submissions. Source and target
// draw from different allow-lists; CurrencyLocal is the sentinel for
// "pay out in the destination's local currency".
const (
	CurrencyILS   = "ILS"
	CurrencyUSD   = "USD"
	CurrencyHKD   = "HKD"
	CurrencyEUR   = "EUR"
	CurrencyLocal = "Local currency"
)

// Payment types available on the public website flow.
const (
	PaymentTypeBankWire   = "BANK_WIRE"
	PaymentTypeCreditCard = "CREDIT_CARD"
	PaymentTypeWPay       = "W_PAY"
)

// TransferKind tags the two submission variants. It drives the local fee
// lookup and the handful of points where the flows diverge; it is never
// sent to the processing system.
type TransferKind string

const (
	KindDeposit TransferKind = "deposit"
	KindPickup  TransferKind = "pickup"
)

func (k TransferKind) IsDeposit() bool { return k == KindDeposit }
func (k TransferKind) IsPickup() bool  { return k == KindPickup }

type CurrencyPair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type PersonName struct {
	First  string `json:"first"`
	Middle string `json:"middle,omitempty"`
	Last   string `json:"last"`
}

type BankWireInfo struct {
	BankOwnerName string `json:"bankOwnerName"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	Branch        string `json:"branch"`
	Comment       string `json:"comment,omitempty"`
}

type CardInfo struct {
	Number      string `json:"number,omitempty"`
	ExpiryMonth string `json:"expiryMonth,omitempty"`
	ExpiryYear  string `json:"expiryYear,omitempty"`
	CVV         string `json:"-"`
	Token       string `json:"token,omitempty"`
}

// Party is one side of a transfer as submitted by the end user.
type Party struct {
	Name             PersonName    `json:"name"`
	Identifier       string        `json:"identifier"`
	IdentifierType   string        `json:"identifierType"`
	IdentifierExpire string        `json:"identifierExpire,omitempty"`
	BirthDate        string        `json:"birthDate,omitempty"`
	Address          string        `json:"address"`
	City             string        `json:"city"`
	PhoneNumber      string        `json:"phoneNumber"`
	Resident         string        `json:"resident"`
	BankWireInfo     *BankWireInfo `json:"bankWireInfo,omitempty"`
	CardInfo         *CardInfo     `json:"cardInfo,omitempty"`
}

type TransferMade struct {
	Username string `json:"username"`
	Agent    string `json:"agent"`
}

// Submission is a self-service transfer request as it travels through the
// pipeline: parsed from the request body, normalized, augmented with the
// computed fee and submitter identity, and finally sent to the gateway.
// Amount stays a string end to end; its format is enforced by validation.
type Submission struct {
	ReceivingCountry string        `json:"receivingCountry"`
	SendingCountry   string        `json:"sendingCountry,omitempty"`
	Currency         CurrencyPair  `json:"currency"`
	TransferType     *string       `json:"transferType,omitempty"`
	Amount           string        `json:"amount"`
	PaymentType      string        `json:"paymentType,omitempty"`
	Nature           string        `json:"nature,omitempty"`
	ReceiptNO        string        `json:"receiptNO"`
	Sender           Party         `json:"sender"`
	Receiver         Party         `json:"receiver"`
	TransferMade     *TransferMade `json:"transferMade,omitempty"`
	Username         string        `json:"username,omitempty"`
	Fee              float64       `json:"fee"`
	IsWebsite        bool          `json:"isWebsite,omitempty"`
}

// AmountValue parses the validated amount string. It returns 0 for input
// that never passed validation.
func (s *Submission) AmountValue() float64 {
	v, err := strconv.ParseFloat(s.Amount, 64)
	if err != nil {
		return 0
	}
	return v
}
