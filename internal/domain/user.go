package domain

type Address struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	Region       string `json:"region"`
	Country      string `json:"country"`
	PostalCode   string `json:"postalCode,omitempty"`
	IsActive     bool   `json:"isActive"`
}

// UserRequest is the registration payload sent to the commerce API.
type UserRequest struct {
	Name           string    `json:"name"`
	Lastname       string    `json:"lastname"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phoneNumber"`
	TypeDocument   string    `json:"typeDocument"`
	DocumentNumber string    `json:"documentNumber"`
	Address        []Address `json:"address"`
}

// User is the identified shopper, as returned by the commerce API and
// persisted per session. An absent user means "not authenticated".
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Lastname       string    `json:"lastname"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phoneNumber"`
	TypeDocument   string    `json:"typeDocument"`
	DocumentNumber string    `json:"documentNumber"`
	Address        []Address `json:"address"`
}

// ActiveAddress returns the first address marked active, used as the
// shipping address. Exactly one is expected to be active.
func (u User) ActiveAddress() *Address {
	for i := range u.Address {
		if u.Address[i].IsActive {
			return &u.Address[i]
		}
	}
	return nil
}
