package enum

import "encoding/json"

// CheckoutState tracks a terminal's checkout attempt through its lifecycle.
type CheckoutState int

const (
	// CheckoutStateIdle means no sale is being built.
	CheckoutStateIdle CheckoutState = 0
	// CheckoutStateEditing means cart or tender lines are being adjusted.
	CheckoutStateEditing CheckoutState = 1
	// CheckoutStateSubmitting means the sale is in flight; mutation is locked out.
	CheckoutStateSubmitting CheckoutState = 2
	// CheckoutStateSucceeded means the backend accepted the sale and issued a folio.
	CheckoutStateSucceeded CheckoutState = 3
	// CheckoutStateFailed means the last submission was rejected; tender lines
	// are preserved for correction.
	CheckoutStateFailed CheckoutState = 4
)

func (s CheckoutState) String() string {
	names := [...]string{"Idle", "Editing", "Submitting", "Succeeded", "Failed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Idle"
	}
	return names[s]
}

func (s CheckoutState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
