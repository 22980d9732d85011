// Package payment implements the payment gateway service against Omise.
package payment

import (
	"context"
	"math"
	"strings"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"

	"pasar/config"
	"pasar/internal/domain/service"
	"pasar/internal/errors"
)

const defaultCurrency = "idr"

// omiseGateway is a concrete implementation of the PaymentGateway interface.
type omiseGateway struct {
	client   *omise.Client
	currency string
}

// NewOmiseGateway is the constructor for omiseGateway.
func NewOmiseGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Omise == nil || cfg.Omise.PublicKey == "" || cfg.Omise.SecretKey == "" {
		return nil, errors.New("omise keys must be provided")
	}

	client, err := omise.NewClient(cfg.Omise.PublicKey, cfg.Omise.SecretKey)
	if err != nil {
		return nil, errors.Wrap(err, "create omise client")
	}

	currency := cfg.Omise.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return &omiseGateway{client: client, currency: currency}, nil
}

// Charge executes a single charge attempt. Card tokens charge directly; any
// other method name is created as a payment source first (promptpay and the
// other hosted flows), so the result carries the gateway's authorize URL.
func (g *omiseGateway) Charge(ctx context.Context, req service.ChargeRequest) (*service.ChargeResult, error) {
	// Omise bills in the currency's smallest unit.
	amount := int64(math.Round(req.Amount * 100))

	op := &operations.CreateCharge{
		Amount:      amount,
		Currency:    g.currency,
		Description: req.TransactionID,
	}

	if strings.HasPrefix(req.Method, "tokn_") {
		op.Card = req.Method
	} else {
		source, err := g.createSource(ctx, req.Method, amount)
		if err != nil {
			return nil, err
		}
		op.Source = source.ID
	}

	charge := &omise.Charge{}
	if err := g.do(ctx, func() error { return g.client.Do(charge, op) }); err != nil {
		return nil, errors.Wrap(err, "create charge")
	}

	return &service.ChargeResult{
		ChargeID:   charge.ID,
		Status:     string(charge.Status),
		Paid:       charge.Paid,
		PaymentURL: charge.AuthorizeURI,
	}, nil
}

func (g *omiseGateway) createSource(ctx context.Context, sourceType string, amount int64) (*omise.Source, error) {
	source := &omise.Source{}
	op := &operations.CreateSource{
		Type:     sourceType,
		Amount:   amount,
		Currency: g.currency,
	}
	if err := g.do(ctx, func() error { return g.client.Do(source, op) }); err != nil {
		return nil, errors.Wrapf(err, "create %s source", sourceType)
	}

	return source, nil
}

// do runs an Omise call under the caller's context. The client itself has no
// context support, so the call runs in a goroutine and the deadline bounds
// the wait.
func (g *omiseGateway) do(ctx context.Context, call func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- call()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
