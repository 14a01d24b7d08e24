package entity

import "github.com/google/uuid"

// PaymentMethod is one of the finite tender options served by the backend.
type PaymentMethod struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
}

// IsCash reports whether this method is the cash method identified by code.
func (m PaymentMethod) IsCash(cashCode string) bool {
	return m.Code == cashCode
}
