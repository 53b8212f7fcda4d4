// Package selfservice runs the transfer submission pipeline: validate the
// submission, resolve the fee, forward the transfer to the processing
// system and, on success, persist the local transaction records. Deposit
// and pickup share one flow; the TransferKind tag governs the few points
// where they diverge.
package selfservice

import (
	"context"
	"fmt"
	"log"

	apierrors "pullapi/internal/errors"
	"pullapi/internal/gateway"
	"pullapi/internal/models"
	"pullapi/internal/repositories"
	"pullapi/internal/services/cards"
	"pullapi/internal/services/fee"
	"pullapi/internal/validation"
)

type Service interface {
	Submit(ctx context.Context, user *models.User, kind models.TransferKind, sub *models.Submission) (*Result, error)
}

type service struct {
	fees      fee.Service
	gw        gateway.Client
	transfers repositories.TransferRepository
	cards     cards.Service
}

// NewService creates the submission pipeline. The cards service is only
// exercised by website submissions paying by card and may be nil when that
// flow is disabled.
func NewService(fees fee.Service, gw gateway.Client, transfers repositories.TransferRepository, cardsSvc cards.Service) Service {
	if fees == nil {
		panic("fee service is required")
	}
	if gw == nil {
		panic("gateway client is required")
	}
	if transfers == nil {
		panic("transfer repository is required")
	}
	return &service{fees: fees, gw: gw, transfers: transfers, cards: cardsSvc}
}

func (s *service) Submit(ctx context.Context, user *models.User, kind models.TransferKind, sub *models.Submission) (*Result, error) {
	normalized := validation.Normalize(*sub)

	receipts, err := s.transfers.ReceiptIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	v := validation.ValidateSubmission(&normalized, validation.Options{
		Kind:             kind,
		IsWebsite:        normalized.IsWebsite,
		ExistingReceipts: receipts,
	})
	if !v.Valid() {
		return nil, &apierrors.ValidationError{Fields: v.Errors}
	}

	// Deposits get the submitter identity attached before fee resolution,
	// pickups after. The lookup never reads it, but the ordering is part
	// of the contract with the processing system and stays as is.
	if kind.IsDeposit() {
		s.attachTransferMade(&normalized, user)
	}

	feeAmount, err := s.fees.Resolve(ctx, fee.ResolveInput{
		ReceivingCountry: normalized.ReceivingCountry,
		Currency:         normalized.Currency.Target,
		TransferType:     normalized.TransferType,
		Kind:             kind,
		Amount:           normalized.Amount,
		Username:         user.Username,
	})
	if err != nil {
		return nil, err
	}
	normalized.Fee = feeAmount

	if kind.IsPickup() {
		s.attachTransferMade(&normalized, user)
		// Forced to the authenticated username immediately before remote
		// submission, whatever the request carried.
		normalized.Username = user.Username
	}

	if err := s.tokenizeCard(ctx, &normalized); err != nil {
		return nil, err
	}

	var env gateway.Envelope
	if kind.IsPickup() {
		env, err = s.gw.CreatePickup(ctx, &normalized)
	} else {
		env, err = s.gw.CreateDeposit(ctx, &normalized)
	}
	if err != nil {
		log.Printf("remote %s submission failed: %v", kind, err)
		return nil, apierrors.Unspecified()
	}

	content := env.Content
	if !env.Ok() {
		if content.HasErrorShape() {
			return nil, apierrors.New(content.Description, content.Message, content.StatusCode)
		}
		return nil, apierrors.Unspecified()
	}

	if err := s.materialize(ctx, user, &normalized, content); err != nil {
		// The remote transfer exists at this point; a lost local record is
		// the accepted orphan gap. Surface it loudly.
		log.Printf("failed to persist transfer pid=%s after remote success: %v", content.Pid, err)
		return nil, fmt.Errorf("failed to persist transfer: %w", err)
	}

	return &Result{
		Description: content.Message,
		Message: ResultMessage{
			Pid:                   content.Pid,
			TransactionStatus:     content.TransactionStatus,
			TransactionIDExternal: content.TransactionIDExternal,
		},
	}, nil
}

func (s *service) attachTransferMade(sub *models.Submission, user *models.User) {
	if sub.TransferMade == nil {
		sub.TransferMade = &models.TransferMade{}
	}
	sub.TransferMade.Username = user.Name
	sub.TransferMade.Agent = user.AgentName
}

// tokenizeCard swaps the card details of a website card payment for a
// token before anything leaves the service. Rejection here happens before
// the remote submission call.
func (s *service) tokenizeCard(ctx context.Context, sub *models.Submission) error {
	if !sub.IsWebsite || sub.PaymentType != models.PaymentTypeCreditCard {
		return nil
	}
	if s.cards == nil || sub.Sender.CardInfo == nil {
		return nil
	}

	token, err := s.cards.Tokenize(ctx, *sub.Sender.CardInfo)
	if err != nil {
		return apierrors.New("Card error!", err.Error(), 422)
	}
	sub.Sender.CardInfo = &models.CardInfo{Token: token}
	return nil
}
