// Package fee resolves the fee to charge for a self-service transfer:
// local fee-schedule lookup first, remote pricing query when the schedule
// has no matching rule. The remote authority is the source of truth for
// destinations the local schedule does not cover.
package fee

import (
	"context"
	"errors"
	"fmt"
	"log"

	apierrors "pullapi/internal/errors"
	"pullapi/internal/gateway"
	"pullapi/internal/models"
	"pullapi/internal/repositories"
	"pullapi/internal/repositories/cache"

	"github.com/shopspring/decimal"
)

// Fallback strings used when the remote pricing query fails without a
// usable payload. The caller always sees status 404 for an unresolvable
// fee, whatever the remote's own status was.
const (
	ErrDescriptionNoFee = "Wrong amount or No fee error!"
	ErrMessageNoFee     = "Wrong amount or No fee is set for this destination!"
)

// ResolveInput identifies the fee-schedule row to look for plus what the
// remote pricing query needs on a local miss.
type ResolveInput struct {
	ReceivingCountry string
	Currency         string
	TransferType     *string
	Kind             models.TransferKind
	Amount           string
	Username         string
}

type Service interface {
	Resolve(ctx context.Context, in ResolveInput) (float64, error)
}

type service struct {
	rules repositories.FeeRuleRepository
	gw    gateway.Client
	cache *cache.CacheService
}

// NewService creates a fee resolver. The cache is optional.
func NewService(rules repositories.FeeRuleRepository, gw gateway.Client, cacheSvc *cache.CacheService) Service {
	if rules == nil {
		panic("fee rule repository is required")
	}
	if gw == nil {
		panic("gateway client is required")
	}
	return &service{rules: rules, gw: gw, cache: cacheSvc}
}

func (s *service) Resolve(ctx context.Context, in ResolveInput) (float64, error) {
	rule, err := s.localRule(ctx, in)
	switch {
	case err == nil:
		return localFee(rule, in.Amount), nil
	case errors.Is(err, repositories.ErrFeeRuleNotFound):
		return s.remoteFee(ctx, in)
	default:
		return 0, fmt.Errorf("fee rule lookup failed: %w", err)
	}
}

func (s *service) localRule(ctx context.Context, in ResolveInput) (*models.FeeRule, error) {
	var key string
	if s.cache != nil {
		key = s.cacheKey(in)
		var cached models.FeeRule
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Printf("fee rule cache read failed: %v", err)
		} else if found {
			return &cached, nil
		}
	}

	rule, err := s.rules.Find(ctx, in.ReceivingCountry, in.Currency, in.TransferType,
		in.Kind.IsDeposit(), in.Kind.IsPickup())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, rule); err != nil {
			log.Printf("fee rule cache write failed: %v", err)
		}
	}
	return rule, nil
}

func (s *service) cacheKey(in ResolveInput) string {
	transferType := ""
	if in.TransferType != nil {
		transferType = *in.TransferType
	}
	return s.cache.GenerateKey("fee_rule", string(in.Kind),
		fmt.Sprintf("%s:%s:%s", in.ReceivingCountry, in.Currency, transferType))
}

// localFee applies a schedule rule to the raw submitted amount. Percentage
// takes precedence over the fixed amount; they are never combined.
func localFee(rule *models.FeeRule, amount string) float64 {
	if rule.FeeInPercent != nil {
		amt, err := decimal.NewFromString(amount)
		if err != nil {
			return 0
		}
		fee := amt.Mul(decimal.NewFromFloat(*rule.FeeInPercent)).Div(decimal.NewFromInt(100))
		return fee.InexactFloat64()
	}
	if rule.FeeFixedAmount != nil {
		return *rule.FeeFixedAmount
	}
	return 0
}

// remoteFee asks the processing system to price the transfer. Anything but
// a 200 payload means no fee is determinable remotely either; the failure
// is translated to a fixed-shape 404, it is not passed through.
func (s *service) remoteFee(ctx context.Context, in ResolveInput) (float64, error) {
	env, err := s.gw.GetFee(ctx, gateway.FeeQuery{
		ReceivingCountry: in.ReceivingCountry,
		Currency:         in.Currency,
		Country:          in.ReceivingCountry,
		TransferType:     in.TransferType,
		Amount:           in.Amount,
		Username:         in.Username,
		IsWebsite:        true,
	})
	if err != nil {
		log.Printf("remote fee query failed: %v", err)
		return 0, apierrors.New(ErrDescriptionNoFee, ErrMessageNoFee, 404)
	}

	content := env.Content
	if content.StatusCode == 200 {
		return content.Commission, nil
	}

	description := ErrDescriptionNoFee
	message := ErrMessageNoFee
	if content.Description != "" {
		description = content.Description
	}
	if content.Message != "" {
		message = content.Message
	}
	return 0, apierrors.New(description, message, 404)
}
