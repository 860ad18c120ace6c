package payments

import (
	"log"
	"os"

	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/account"
	"github.com/stripe/stripe-go/v81/accountlink"
	"github.com/stripe/stripe-go/v81/checkout/session"
)

func InitStripe() {
	key := os.Getenv("STRIPE_SECRET")
	if key == "" {
		log.Fatalf("STRIPE_SECRET is not set")
	}
	stripe.Key = key
}

// CreateExpressAccount creates a new connected seller account
func CreateExpressAccount() (*stripe.Account, error) {
	params := &stripe.AccountParams{
		Type: stripe.String(string(stripe.AccountTypeExpress)),
	}
	return account.New(params)
}

// CreateAccountLink returns the onboarding link for a connected account
func CreateAccountLink(accountID, redirectURL string) (*stripe.AccountLink, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(redirectURL),
		ReturnURL:  stripe.String(redirectURL),
		Type:       stripe.String("account_onboarding"),
	}
	return accountlink.New(params)
}

// GetAccount fetches the live state of a connected account
func GetAccount(accountID string) (*stripe.Account, error) {
	return account.GetByID(accountID, nil)
}

// CheckoutParams describes a paid enrollment checkout
type CheckoutParams struct {
	CourseName string
	// Price in minor currency units
	Amount int64
	// Platform cut in minor currency units
	ApplicationFee int64
	// Connected account of the course instructor
	Destination string
	SuccessURL  string
	CancelURL   string
}

// CreateCheckoutSession creates a one-time payment session that routes the
// course price to the instructor minus the platform fee
func CreateCheckoutSession(p CheckoutParams) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.CourseName),
					},
					UnitAmount: stripe.Int64(p.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			ApplicationFeeAmount: stripe.Int64(p.ApplicationFee),
			TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripe.String(p.Destination),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	return session.New(params)
}

// GetCheckoutSession fetches the live payment status of a session
func GetCheckoutSession(sessionID string) (*stripe.CheckoutSession, error) {
	return session.Get(sessionID, nil)
}
