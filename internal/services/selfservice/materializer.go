package selfservice

import (
	"context"
	"strings"

	"pullapi/internal/gateway"
	"pullapi/internal/models"

	"github.com/google/uuid"
)

// materialize maps a successful remote submission plus the normalized
// request into the persisted transfer, sender and receiver records. Field
// provenance is strict: currency sending and the party details come from
// the submission, the receiving currency, rate, transfer type and party
// ids come from the remote response.
func (s *service) materialize(ctx context.Context, user *models.User, sub *models.Submission, content gateway.Content) error {
	status := models.TransferStatusPending
	if sub.IsWebsite {
		status = models.TransferStatusCheckDocuments
	}

	transfer := &models.Transfer{
		Reference:         uuid.NewString(),
		TransactionNumber: content.Pid,
		Status:            status,
		SenderCoin:        sub.Currency.Source,
		ReceiverCoin:      content.CurrencyTarget,
		Amount:            sub.AmountValue(),
		Rate:              content.Rate,
		ReceiptID:         sub.ReceiptNO,
		TransferType:      content.MoneyTransferType,
		SenderCountry:     sub.Sender.Resident,
		ReceivingCountry:  sub.ReceivingCountry,
		ServiceType:       models.ServiceTypeSelfService,
		UserID:            user.ID,
	}

	sender := clientRecord(sub.Sender, models.ClientRoleSender, content.MoneySenderID)
	receiver := clientRecord(sub.Receiver, models.ClientRoleReceiver, content.MoneyReceiverID)

	return s.transfers.InsertTransaction(ctx, transfer, sender, receiver)
}

func clientRecord(p models.Party, role, remoteID string) *models.Client {
	return &models.Client{
		FirstName:        p.Name.First,
		MiddleName:       middleName(p.Name.Middle),
		LastName:         p.Name.Last,
		IdentifierType:   strings.ToLower(p.IdentifierType),
		IdentifierNumber: p.Identifier,
		City:             p.City,
		Address:          p.Address,
		Phone:            p.PhoneNumber,
		RemoteID:         remoteID,
		Role:             role,
	}
}

// middleName stores an explicitly absent value, not an empty string, when
// the submission carried nothing but whitespace.
func middleName(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
