package payment

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/charge"
	"github.com/stripe/stripe-go/v76/customer"
)

// All charges are submitted in a fixed currency.
const Currency = "inr"

// ChargeRequest carries the client-side card token and the product
// descriptor being charged for.
type ChargeRequest struct {
	TokenID     string
	Email       string
	Amount      int64
	Description string
}

// Gateway submits a tokenized card charge to the payment processor.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*stripe.Charge, error)
}

// StripeGateway creates a Stripe customer from the card token, then charges
// that customer. The Stripe key is process-wide state owned by the SDK.
type StripeGateway struct{}

func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

func (g *StripeGateway) Charge(ctx context.Context, req ChargeRequest) (*stripe.Charge, error) {
	customerParams := &stripe.CustomerParams{
		Email:  stripe.String(req.Email),
		Source: stripe.String(req.TokenID),
	}
	customerParams.Context = ctx

	cust, err := customer.New(customerParams)
	if err != nil {
		return nil, err
	}

	chargeParams := &stripe.ChargeParams{
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(Currency),
		Customer:    stripe.String(cust.ID),
		Description: stripe.String(req.Description),
	}
	chargeParams.Context = ctx

	return charge.New(chargeParams)
}
