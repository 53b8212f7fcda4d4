package validation

import (
	"encoding/json"
	"strings"
	"time"

	"pullapi/internal/models"
)

// nameSigns are the punctuation characters the processing system rejects
// in sender names.
var nameSigns = strings.NewReplacer("-", "", "/", "", "'", "")

// Normalize returns a copy of the submission with the case and punctuation
// fixes applied before constraint evaluation: countries and the source
// currency go upper-case, the target currency goes upper-case unless it is
// the local-currency sentinel, the receiver city goes lower-case and the
// sender name parts lose their punctuation. Applying it twice is a no-op.
func Normalize(sub models.Submission) models.Submission {
	sub.ReceivingCountry = strings.ToUpper(sub.ReceivingCountry)
	sub.SendingCountry = strings.ToUpper(sub.SendingCountry)
	sub.Currency.Source = strings.ToUpper(sub.Currency.Source)
	if sub.Currency.Target != "" && sub.Currency.Target != models.CurrencyLocal {
		sub.Currency.Target = strings.ToUpper(sub.Currency.Target)
	}
	sub.Receiver.City = strings.ToLower(sub.Receiver.City)
	sub.Sender.Name.First = nameSigns.Replace(sub.Sender.Name.First)
	sub.Sender.Name.Middle = nameSigns.Replace(sub.Sender.Name.Middle)
	sub.Sender.Name.Last = nameSigns.Replace(sub.Sender.Name.Last)
	sub.Sender.Resident = strings.ToUpper(sub.Sender.Resident)
	return sub
}

// Options carries the per-request context the schema needs: the transfer
// kind, whether the submission came through the public website, the
// receipt numbers already recorded for the user, and an injectable "today"
// for the document-expiry rule.
type Options struct {
	Kind             models.TransferKind
	IsWebsite        bool
	ExistingReceipts []string
	Today            time.Time
}

// ValidateSubmission evaluates the self-service schema against a
// normalized submission and returns the collected field errors.
func ValidateSubmission(sub *models.Submission, opts Options) *Validator {
	v := New()

	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	checkDate := func(field, value string, notBefore time.Time, message string) {
		if !dateRegex.MatchString(value) {
			v.AddError(field, "must be a valid date in YYYY-MM-DD format")
			return
		}
		d, err := time.Parse("2006-01-02", value)
		if err != nil {
			v.AddError(field, "must be a valid date in YYYY-MM-DD format")
			return
		}
		if !d.After(notBefore) {
			v.AddError(field, message)
		}
	}

	v.Required("receiptNO", sub.ReceiptNO)
	v.MaxLength("receiptNO", sub.ReceiptNO, 255)
	v.NotIn("receiptNO", sub.ReceiptNO, opts.ExistingReceipts)

	countries := DepositCountries
	if opts.Kind.IsPickup() {
		countries = PickupCountries
	}
	v.Required("receivingCountry", sub.ReceivingCountry)
	if sub.ReceivingCountry != "" {
		v.In("receivingCountry", sub.ReceivingCountry, countries)
	}

	v.Required("amount", sub.Amount)
	if sub.Amount != "" {
		v.Matches("amount", sub.Amount, amountRegex, "must be a positive amount")
	}

	// Pickups carry the transfer type unconditionally; deposits may omit
	// it and fall through to a typeless fee rule.
	if opts.Kind.IsPickup() {
		if sub.TransferType == nil || strings.TrimSpace(*sub.TransferType) == "" {
			v.AddError("transferType", "is required")
		}
	}

	v.Required("sender.identifier", sub.Sender.Identifier)
	v.MinLength("sender.identifier", sub.Sender.Identifier, 4)
	v.MaxLength("sender.identifier", sub.Sender.Identifier, 255)

	v.Required("sender.identifierExpire", sub.Sender.IdentifierExpire)
	if sub.Sender.IdentifierExpire != "" {
		checkDate("sender.identifierExpire", sub.Sender.IdentifierExpire, today, "must not be expired")
	}

	v.Required("sender.identifierType", sub.Sender.IdentifierType)
	if sub.Sender.IdentifierType != "" {
		v.In("sender.identifierType", sub.Sender.IdentifierType, IdentifierTypes)
	}

	v.Required("sender.name.first", sub.Sender.Name.First)
	v.MaxLength("sender.name.first", sub.Sender.Name.First, 255)
	v.MaxLength("sender.name.middle", sub.Sender.Name.Middle, 255)
	v.Required("sender.name.last", sub.Sender.Name.Last)
	v.MaxLength("sender.name.last", sub.Sender.Name.Last, 255)
	v.Required("sender.address", sub.Sender.Address)
	v.MaxLength("sender.address", sub.Sender.Address, 255)
	v.Required("sender.city", sub.Sender.City)
	v.MaxLength("sender.city", sub.Sender.City, 255)
	v.Required("sender.phoneNumber", sub.Sender.PhoneNumber)
	v.MaxLength("sender.phoneNumber", sub.Sender.PhoneNumber, 255)
	v.Required("sender.resident", sub.Sender.Resident)
	v.MaxLength("sender.resident", sub.Sender.Resident, 255)

	v.Required("sender.birthDate", sub.Sender.BirthDate)
	if sub.Sender.BirthDate != "" {
		checkDate("sender.birthDate", sub.Sender.BirthDate,
			time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), "must be after 1900-01-01")
	}

	v.Required("receiver.identifier", sub.Receiver.Identifier)
	v.MaxLength("receiver.identifier", sub.Receiver.Identifier, 255)
	v.Required("receiver.identifierType", sub.Receiver.IdentifierType)
	if sub.Receiver.IdentifierType != "" {
		v.In("receiver.identifierType", sub.Receiver.IdentifierType, IdentifierTypes)
	}
	v.Required("receiver.name.first", sub.Receiver.Name.First)
	v.MaxLength("receiver.name.first", sub.Receiver.Name.First, 255)
	v.MaxLength("receiver.name.middle", sub.Receiver.Name.Middle, 255)
	v.Required("receiver.name.last", sub.Receiver.Name.Last)
	v.MaxLength("receiver.name.last", sub.Receiver.Name.Last, 255)
	v.Required("receiver.address", sub.Receiver.Address)
	v.MaxLength("receiver.address", sub.Receiver.Address, 255)
	v.Required("receiver.city", sub.Receiver.City)
	v.MaxLength("receiver.city", sub.Receiver.City, 255)
	v.Required("receiver.resident", sub.Receiver.Resident)
	v.MaxLength("receiver.resident", sub.Receiver.Resident, 255)
	v.Required("receiver.phoneNumber", sub.Receiver.PhoneNumber)
	v.MaxLength("receiver.phoneNumber", sub.Receiver.PhoneNumber, 255)

	v.Required("currency.target", sub.Currency.Target)
	if sub.Currency.Target != "" {
		v.In("currency.target", sub.Currency.Target, TargetCurrencies)
	}
	v.Required("currency.source", sub.Currency.Source)
	if sub.Currency.Source != "" {
		v.In("currency.source", sub.Currency.Source, SourceCurrencies)
	}

	if sub.TransferMade != nil {
		v.MaxLength("transferMade.agent", sub.TransferMade.Agent, 255)
	}

	if opts.IsWebsite {
		validateWebsiteFields(v, sub)
	}

	return v
}

// validateWebsiteFields covers the rules that only apply to submissions
// from the public website flow: the payment type and its conditionally
// required companions.
func validateWebsiteFields(v *Validator, sub *models.Submission) {
	v.Required("paymentType", sub.PaymentType)
	if sub.PaymentType != "" {
		v.In("paymentType", sub.PaymentType, PaymentTypes)
	}

	if sub.PaymentType == models.PaymentTypeBankWire {
		info := sub.Sender.BankWireInfo
		if info == nil {
			v.AddError("sender.bankWireInfo", "is required when paying by bank wire")
		} else {
			v.Required("sender.bankWireInfo.bankOwnerName", info.BankOwnerName)
			v.Required("sender.bankWireInfo.accountNumber", info.AccountNumber)
			if info.AccountNumber != "" {
				v.Numeric("sender.bankWireInfo.accountNumber", info.AccountNumber)
			}
			v.Required("sender.bankWireInfo.bankName", info.BankName)
			v.Required("sender.bankWireInfo.branch", info.Branch)
		}
	}

	if sub.PaymentType == models.PaymentTypeCreditCard {
		card := sub.Sender.CardInfo
		if card == nil {
			v.AddError("sender.cardInfo", "is required when paying by card")
		} else if card.Token == "" {
			v.Required("sender.cardInfo.number", card.Number)
			v.Required("sender.cardInfo.expiryMonth", card.ExpiryMonth)
			v.Required("sender.cardInfo.expiryYear", card.ExpiryYear)
		}
	}

	v.Required("nature", sub.Nature)
	if sub.Nature != "" {
		v.Check(json.Valid([]byte(sub.Nature)), "nature", "must be valid JSON")
	}
}
