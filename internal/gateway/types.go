package gateway

// FeeQuery is the remote pricing request, issued only when the local fee
// schedule has no matching rule. Country repeats the receiving country;
// that is what the processing system expects.
type FeeQuery struct {
	ReceivingCountry string  `json:"receivingCountry"`
	Currency         string  `json:"currency"`
	Country          string  `json:"country"`
	TransferType     *string `json:"transferType"`
	Amount           string  `json:"amount"`
	Username         string  `json:"username"`
	IsWebsite        bool    `json:"isWebsite"`
}

// Content is the structured payload the processing system returns. Which
// fields are present depends on the call and on whether it succeeded.
type Content struct {
	StatusCode            int     `json:"statusCode,omitempty"`
	Commission            float64 `json:"commission,omitempty"`
	Description           string  `json:"description,omitempty"`
	Message               string  `json:"message,omitempty"`
	Pid                   string  `json:"pid,omitempty"`
	TransactionStatus     string  `json:"transactionStatus,omitempty"`
	TransactionIDExternal string  `json:"transactionIDExternal,omitempty"`
	CurrencyTarget        string  `json:"currencyTarget,omitempty"`
	Rate                  float64 `json:"rate,omitempty"`
	MoneyTransferType     string  `json:"moneyTransferType,omitempty"`
	MoneyReceiverID       string  `json:"moneyReceiverID,omitempty"`
	MoneySenderID         string  `json:"moneySenderID,omitempty"`
}

// HasErrorShape reports whether the payload carries the full error triple
// that can be relayed to the caller verbatim.
func (c Content) HasErrorShape() bool {
	return c.Description != "" && c.Message != "" && c.StatusCode != 0
}

// Envelope wraps a remote response: the transport status plus whatever
// payload the processing system produced.
type Envelope struct {
	Status  int
	Content Content
}

// Ok reports whether the remote call itself succeeded.
func (e Envelope) Ok() bool {
	return e.Status == 200
}
