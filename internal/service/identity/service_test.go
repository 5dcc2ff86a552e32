package identity

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"cute-storefront/internal/domain"
	"cute-storefront/internal/store"
)

type stubGateway struct {
	user      *domain.User
	lookupErr error
	createErr error

	lastEmail   string
	lastRequest domain.UserRequest
}

func (s *stubGateway) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.lastEmail = email
	return s.user, s.lookupErr
}

func (s *stubGateway) CreateUser(_ context.Context, in domain.UserRequest) (*domain.User, error) {
	s.lastRequest = in
	return s.user, s.createErr
}

func validRequest() domain.UserRequest {
	return domain.UserRequest{
		Name:           "Jane",
		Lastname:       "Shopper",
		Email:          "jane@example.com",
		PhoneNumber:    "3001234567",
		TypeDocument:   "CC",
		DocumentNumber: "1020304050",
		Address: []domain.Address{{
			AddressLine1: "Calle 1 # 2-3",
			City:         "Bogotá",
			Region:       "Cundinamarca",
			Country:      "CO",
		}},
	}
}

func TestIdentify_PersistsUserForSession(t *testing.T) {
	gw := &stubGateway{user: &domain.User{ID: 9, Email: "jane@example.com"}}
	svc := New(gw, store.NewMemory(), log.New(io.Discard, "", 0))
	ctx := context.Background()

	user, err := svc.Identify(ctx, "s1", "jane@example.com")
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if user.ID != 9 {
		t.Fatalf("unexpected user %+v", user)
	}
	if gw.lastEmail != "jane@example.com" {
		t.Fatalf("unexpected lookup email %q", gw.lastEmail)
	}

	current, err := svc.Current(ctx, "s1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current.ID != 9 {
		t.Fatalf("persisted user mismatch: %+v", current)
	}
}

func TestIdentify_UnknownEmailSurfacesNotFound(t *testing.T) {
	gw := &stubGateway{lookupErr: domain.ErrNotFound}
	svc := New(gw, store.NewMemory(), log.New(io.Discard, "", 0))

	if _, err := svc.Identify(context.Background(), "s1", "nadie@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegister_ValidatesRequiredFields(t *testing.T) {
	gw := &stubGateway{}
	svc := New(gw, store.NewMemory(), log.New(io.Discard, "", 0))

	in := validRequest()
	in.Name = ""
	in.Address[0].City = " "

	_, err := svc.Register(context.Background(), "s1", in)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validationErr.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", validationErr.Fields)
	}
	if gw.lastRequest.Email != "" {
		t.Fatalf("gateway must not be called on validation failure")
	}
}

func TestRegister_MarksFirstAddressActive(t *testing.T) {
	gw := &stubGateway{user: &domain.User{ID: 5}}
	svc := New(gw, store.NewMemory(), log.New(io.Discard, "", 0))

	in := validRequest()
	in.Address[0].IsActive = false

	if _, err := svc.Register(context.Background(), "s1", in); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !gw.lastRequest.Address[0].IsActive {
		t.Fatalf("expected first address marked active, got %+v", gw.lastRequest.Address[0])
	}
}

func TestCurrent_AbsentSessionIsNotAuthenticated(t *testing.T) {
	svc := New(&stubGateway{}, store.NewMemory(), log.New(io.Discard, "", 0))

	if _, err := svc.Current(context.Background(), "fresh"); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestForget_DropsIdentity(t *testing.T) {
	gw := &stubGateway{user: &domain.User{ID: 9}}
	svc := New(gw, store.NewMemory(), log.New(io.Discard, "", 0))
	ctx := context.Background()

	if _, err := svc.Identify(ctx, "s1", "jane@example.com"); err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if err := svc.Forget(ctx, "s1"); err != nil {
		t.Fatalf("Forget: %v", err)
	}
	if _, err := svc.Current(ctx, "s1"); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated after Forget, got %v", err)
	}
}
