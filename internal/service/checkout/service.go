// Package checkout drives the payment sequence: tokenize the card, create
// the order, initiate the payment. The three remote calls are strictly
// sequential and never retried; a failure at any step fails the whole
// submission and the shopper resubmits from scratch.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cute-storefront/internal/domain"
	"cute-storefront/internal/gateway"
	"cute-storefront/internal/wompi"
)

// GenericFailureMessage is the only payment failure text shown to the
// shopper. Step-level detail stays in the logs.
const GenericFailureMessage = "Hubo un problema al procesar tu pago. Intenta nuevamente."

var (
	// ErrTermsNotAccepted rejects a submission before any network call.
	ErrTermsNotAccepted = errors.New("terms and conditions not accepted")
	// ErrInvalidUser rejects a submission with no usable user identity.
	ErrInvalidUser = errors.New("invalid user")
	// ErrCartUnpriceable blocks submission while any cart line lacks a price.
	ErrCartUnpriceable = errors.New("cart items could not be priced")
	// ErrTokenization covers a rejected or failed card tokenization.
	ErrTokenization = errors.New("card tokenization failed")
	// ErrOrderCreation covers a failed or id-less order creation.
	ErrOrderCreation = errors.New("order creation failed")
	// ErrPaymentInitiation covers a failed or non-Ok payment initiation.
	ErrPaymentInitiation = errors.New("payment initiation failed")
)

const paymentCurrency = "COP"

type commerceGateway interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateOrder(ctx context.Context, in domain.OrderRequest) (*domain.Order, error)
	InitiatePayment(ctx context.Context, in domain.InitiatePaymentRequest) (*gateway.PaymentResult, error)
}

type tokenizer interface {
	TokenizeCard(ctx context.Context, card wompi.CardTokenRequest) (string, error)
}

type cartClearer interface {
	Clear(ctx context.Context, session string) error
}

type Service struct {
	gw          commerceGateway
	tok         tokenizer
	cart        cartClearer
	redirectURL string
	logger      *log.Logger
}

func New(gw commerceGateway, tok tokenizer, cart cartClearer, redirectURL string, logger *log.Logger) *Service {
	return &Service{
		gw:          gw,
		tok:         tok,
		cart:        cart,
		redirectURL: redirectURL,
		logger:      logger,
	}
}

// SubmitInput is everything a payment submission needs: the session (for
// clearing the cart on success), the identified user, the card form, the
// cart snapshot and the terms affirmation.
type SubmitInput struct {
	Session       string
	User          *domain.User
	Card          CardInput
	Items         []domain.CartItem
	TermsAccepted bool
}

// SubmitResult reports the terminal state of a submission.
type SubmitResult struct {
	Status  Status
	OrderID int64
	Quote   Quote
}

// Submit runs the payment sequence. Guards and local validation come
// first and make no network calls; then totals are recomputed from fresh
// prices; then tokenize → create order → initiate payment, each step
// gated on the previous one. Success clears the persisted cart.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	failed := SubmitResult{Status: StatusFailed}

	if !in.TermsAccepted {
		return failed, ErrTermsNotAccepted
	}
	if in.User == nil || in.User.ID <= 0 {
		return failed, ErrInvalidUser
	}
	if fieldErrors := validateCard(in.Card); len(fieldErrors) > 0 {
		return failed, &CardValidationError{Fields: fieldErrors}
	}

	quote := s.Quote(ctx, in.Items)
	if quote.HasError {
		return SubmitResult{Status: StatusFailed, Quote: quote}, ErrCartUnpriceable
	}

	token, err := s.tok.TokenizeCard(ctx, wompi.CardTokenRequest{
		Number:     in.Card.Number,
		ExpMonth:   in.Card.ExpMonth,
		ExpYear:    in.Card.ExpYear,
		CVC:        in.Card.CVC,
		CardHolder: in.Card.Holder,
	})
	if err != nil {
		s.logger.Printf("tokenize card for user %d: %v", in.User.ID, err)
		return failed, fmt.Errorf("%w: %w", ErrTokenization, err)
	}

	orderItems := make([]domain.OrderItemRequest, len(in.Items))
	for i, item := range in.Items {
		orderItems[i] = domain.OrderItemRequest{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	order, err := s.gw.CreateOrder(ctx, domain.OrderRequest{UserID: in.User.ID, Items: orderItems})
	if err != nil {
		s.logger.Printf("create order for user %d: %v", in.User.ID, err)
		return failed, fmt.Errorf("%w: %w", ErrOrderCreation, err)
	}
	if order.ID <= 0 {
		s.logger.Printf("order response for user %d carries no id", in.User.ID)
		return failed, ErrOrderCreation
	}

	// The token minted above is discarded on failure from here on; tokens
	// are inert until used, so no compensating call is needed.
	result, err := s.gw.InitiatePayment(ctx, domain.InitiatePaymentRequest{
		OrderID: order.ID,
		Wompi: domain.WompiTransaction{
			AmountInCents:    quote.Total,
			AmountInCentsIva: quote.Tax,
			Currency:         paymentCurrency,
			Installments:     in.Card.Installments,
			RedirectURL:      s.redirectURL,
			CustomerEmail:    in.User.Email,
			PaymentToken:     token,
		},
	})
	if err != nil {
		s.logger.Printf("initiate payment for order %d: %v", order.ID, err)
		return failed, fmt.Errorf("%w: %w", ErrPaymentInitiation, err)
	}
	if !result.Ok() {
		s.logger.Printf("payment for order %d rejected: message=%q", order.ID, result.Message)
		return failed, ErrPaymentInitiation
	}

	if err := s.cart.Clear(ctx, in.Session); err != nil {
		// The payment went through; a failed cart clear must not undo that.
		s.logger.Printf("clear cart for session %s: %v", in.Session, err)
	}

	return SubmitResult{Status: StatusSuccess, OrderID: order.ID, Quote: quote}, nil
}
