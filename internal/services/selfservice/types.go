package selfservice

// ResultMessage is the success payload returned to the caller: the remote
// transaction identifier, its status, and the external id when the
// processing system assigned one.
type ResultMessage struct {
	Pid                   string `json:"pid"`
	TransactionStatus     string `json:"transactionStatus"`
	TransactionIDExternal string `json:"transactionIDExternal,omitempty"`
}

// Result is the outbound success response for a submitted transfer.
type Result struct {
	Description string        `json:"description"`
	Message     ResultMessage `json:"message"`
}
