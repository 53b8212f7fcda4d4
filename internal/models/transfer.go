package models

import "time"

// Transfer statuses assigned at creation time. Later transitions are owned
// by the back-office flows, not by the submission pipeline.
const (
	TransferStatusPending        = "PENDING"
	TransferStatusCheckDocuments = "CHECK_DOCUMENTS"
)

// Service types a transfer can originate from.
const (
	ServiceTypeSelfService = "SELF_SERVICE"
)

// Client roles on a transfer.
const (
	ClientRoleSender   = "sender"
	ClientRoleReceiver = "receiver"
)

// Transfer is the persisted record of a successfully submitted transfer.
// TransactionNumber is the processing system's pid; Reference is ours.
type Transfer struct {
	ID                uint   `gorm:"primarykey"`
	Reference         string `gorm:"uniqueIndex;not null"`
	TransactionNumber string `gorm:"index;not null"`
	Status            string `gorm:"not null"`
	SenderCoin        string `gorm:"not null"`
	ReceiverCoin      string `gorm:"not null"`
	Amount            float64
	Rate              float64
	ReceiptID         string `gorm:"uniqueIndex:idx_transfers_user_receipt;not null"`
	TransferType      string
	SenderCountry     string
	ReceivingCountry  string
	ServiceType       string `gorm:"not null"`
	UserID            uint   `gorm:"uniqueIndex:idx_transfers_user_receipt;not null"`
	SenderClientID    uint
	ReceiverClientID  uint
	SenderClient      *Client `gorm:"foreignKey:SenderClientID"`
	ReceiverClient    *Client `gorm:"foreignKey:ReceiverClientID"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Client is a transfer party as persisted alongside the transfer record.
// MiddleName is nil, not empty, when the submission carried no middle name.
// RemoteID is the party identifier assigned by the processing system.
type Client struct {
	ID               uint `gorm:"primarykey"`
	FirstName        string
	MiddleName       *string
	LastName         string
	IdentifierType   string // stored lower-cased
	IdentifierNumber string
	City             string
	Address          string
	Phone            string
	RemoteID         string
	Role             string `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// FeeRule is one row of the local fee schedule, keyed by destination,
// currency and transfer type plus the deposit/pickup flag. Exactly one of
// FeeInPercent and FeeFixedAmount is meant to be set; percent wins when
// both are present.
type FeeRule struct {
	ID               uint    `gorm:"primarykey"`
	ReceivingCountry string  `gorm:"index:idx_fee_rules_key;not null"`
	Currency         string  `gorm:"index:idx_fee_rules_key;not null"`
	TransferType     *string `gorm:"index:idx_fee_rules_key"`
	IsDeposit        bool    `gorm:"index:idx_fee_rules_key"`
	IsPickup         bool    `gorm:"index:idx_fee_rules_key"`
	FeeInPercent     *float64
	FeeFixedAmount   *float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
