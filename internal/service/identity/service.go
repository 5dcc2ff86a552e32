// Package identity handles shopper identification: lookup by email or
// explicit registration against the commerce API, with the resulting user
// persisted per session. No user for a session means "not authenticated".
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"cute-storefront/internal/domain"
	"cute-storefront/internal/store"
)

type userGateway interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.UserRequest) (*domain.User, error)
}

type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Service struct {
	gw     userGateway
	kv     kvStore
	logger *log.Logger
}

func New(gw userGateway, kv kvStore, logger *log.Logger) *Service {
	return &Service{gw: gw, kv: kv, logger: logger}
}

// ValidationError carries registration field errors for inline display.
type ValidationError struct {
	Fields []domain.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("registration validation failed on %d field(s)", len(e.Fields))
}

// requiredFields is the registration form contract: field key, message
// shown inline, and the accessor into the request.
var requiredFields = []struct {
	field   string
	message string
	value   func(domain.UserRequest) string
}{
	{"name", "Nombre requerido", func(u domain.UserRequest) string { return u.Name }},
	{"lastname", "Apellido requerido", func(u domain.UserRequest) string { return u.Lastname }},
	{"email", "Correo requerido", func(u domain.UserRequest) string { return u.Email }},
	{"phoneNumber", "Teléfono requerido", func(u domain.UserRequest) string { return u.PhoneNumber }},
	{"typeDocument", "Tipo de documento requerido", func(u domain.UserRequest) string { return u.TypeDocument }},
	{"documentNumber", "Número de documento requerido", func(u domain.UserRequest) string { return u.DocumentNumber }},
}

var requiredAddressFields = []struct {
	field   string
	message string
	value   func(domain.Address) string
}{
	{"addressLine1", "Dirección requerida", func(a domain.Address) string { return a.AddressLine1 }},
	{"city", "Ciudad requerida", func(a domain.Address) string { return a.City }},
	{"region", "Región requerida", func(a domain.Address) string { return a.Region }},
	{"country", "País requerido", func(a domain.Address) string { return a.Country }},
}

func validateRegistration(in domain.UserRequest) []domain.FieldError {
	var fieldErrors []domain.FieldError
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(in)) == "" {
			fieldErrors = append(fieldErrors, domain.FieldError{Field: f.field, Error: f.message})
		}
	}
	if len(in.Address) == 0 {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "address", Error: "Dirección requerida"})
		return fieldErrors
	}
	for _, f := range requiredAddressFields {
		if strings.TrimSpace(f.value(in.Address[0])) == "" {
			fieldErrors = append(fieldErrors, domain.FieldError{Field: f.field, Error: f.message})
		}
	}
	return fieldErrors
}

// Identify looks the user up by email and binds them to the session.
func (s *Service) Identify(ctx context.Context, session, email string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, &ValidationError{Fields: []domain.FieldError{{Field: "email", Error: "Correo requerido"}}}
	}

	user, err := s.gw.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, session, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates a user through the commerce API and binds them to the
// session. The first address is always marked active.
func (s *Service) Register(ctx context.Context, session string, in domain.UserRequest) (*domain.User, error) {
	if fieldErrors := validateRegistration(in); len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}
	in.Address[0].IsActive = true

	user, err := s.gw.CreateUser(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, session, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Current returns the session's user, or domain.ErrNotAuthenticated.
func (s *Service) Current(ctx context.Context, session string) (*domain.User, error) {
	data, err := s.kv.Get(ctx, store.UserKey(session))
	if errors.Is(err, store.ErrNotFound) {
		return nil, domain.ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

// Forget drops the session's identity.
func (s *Service) Forget(ctx context.Context, session string) error {
	return s.kv.Delete(ctx, store.UserKey(session))
}

func (s *Service) save(ctx context.Context, session string, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.kv.Set(ctx, store.UserKey(session), data); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}
