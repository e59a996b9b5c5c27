package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MasinARK/E-commerce/catalog"
	"github.com/MasinARK/E-commerce/models"
)

var (
	// ErrEmptyCart rejects a checkout attempted with no line items.
	// No provider call is made in this case.
	ErrEmptyCart = errors.New("no items in cart")

	// ErrProvider covers network failures, provider-reported errors
	// and malformed provider responses.
	ErrProvider = errors.New("error creating checkout session")
)

// Customer carries the contact and shipping fields collected on the
// checkout form.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// LineItem is a provider-facing line: display fields plus the unit
// amount passed through unchanged in minor units.
type LineItem struct {
	Currency   string
	Name       string
	Images     []string
	UnitAmount int64
	Quantity   int
}

// SessionRequest is the hosted-checkout session the provider is asked
// to create.
type SessionRequest struct {
	PaymentMethodTypes []string
	Mode               string
	LineItems          []LineItem
	SuccessURL         string
	CancelURL          string
	ShippingCountries  []string
	CustomerEmail      string
	ClientReferenceID  string
}

// Session is the provider's answer: an opaque session id and the
// hosted payment page to redirect the shopper to.
type Session struct {
	ID  string `json:"sessionId"`
	URL string `json:"url"`
}

// SessionCreator is the payment-provider boundary.
type SessionCreator interface {
	CreateSession(ctx context.Context, req SessionRequest) (Session, error)
}

// Builder turns cart line items into a provider checkout session.
// Every line is re-priced from the catalog by product id; the
// client-sent price is never trusted.
type Builder struct {
	Catalog           catalog.Catalog
	Provider          SessionCreator
	BaseURL           string
	ShippingCountries []string
}

// CreateSession validates the cart, builds the provider request and
// returns the provider's session unchanged. The caller's cart state is
// never touched here; clearing happens only on arrival at the success
// destination.
func (b *Builder) CreateSession(ctx context.Context, items []models.LineItem, customer Customer) (Session, error) {
	if len(items) == 0 {
		return Session{}, ErrEmptyCart
	}

	lines := make([]LineItem, 0, len(items))
	for _, it := range items {
		product, err := b.Catalog.GetProduct(ctx, it.Product.ID)
		if err != nil {
			return Session{}, fmt.Errorf("price lookup for %q: %w", it.Product.ID, err)
		}
		lines = append(lines, LineItem{
			Currency:   "usd",
			Name:       product.Name,
			Images:     product.Images,
			UnitAmount: product.Price,
			Quantity:   it.Quantity,
		})
	}

	req := SessionRequest{
		PaymentMethodTypes: []string{"card"},
		Mode:               "payment",
		LineItems:          lines,
		SuccessURL:         b.BaseURL + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:          b.BaseURL + "/cart",
		ShippingCountries:  b.ShippingCountries,
		CustomerEmail:      customer.Email,
		ClientReferenceID:  uuid.NewString(),
	}

	session, err := b.Provider.CreateSession(ctx, req)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	if session.URL == "" {
		return Session{}, fmt.Errorf("%w: provider returned no redirect URL", ErrProvider)
	}
	return session, nil
}
