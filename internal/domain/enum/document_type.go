package enum

import "encoding/json"

// DocumentType identifies the Chilean electronic tax document (DTE) issued for
// a sale. The value is the official SII type code and travels on the wire as-is.
type DocumentType int

const (
	// DocumentTypeBoleta is the consumer receipt; no customer binding needed.
	DocumentTypeBoleta DocumentType = 39
	// DocumentTypeFactura is the invoice; a customer must be bound before issuing.
	DocumentTypeFactura DocumentType = 33
)

// Valid reports whether the code is one this terminal can issue.
func (d DocumentType) Valid() bool {
	return d == DocumentTypeBoleta || d == DocumentTypeFactura
}

// RequiresCustomer reports whether the document cannot be issued without a
// bound customer.
func (d DocumentType) RequiresCustomer() bool {
	return d == DocumentTypeFactura
}

func (d DocumentType) String() string {
	switch d {
	case DocumentTypeBoleta:
		return "Boleta"
	case DocumentTypeFactura:
		return "Factura"
	}
	return "Unknown"
}

// documentTypeJSON carries both the wire code and a display name.
type documentTypeJSON struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

func (d DocumentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(documentTypeJSON{Code: int(d), Name: d.String()})
}

func (d *DocumentType) UnmarshalJSON(data []byte) error {
	var payload documentTypeJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		var code int
		if err := json.Unmarshal(data, &code); err != nil {
			return err
		}
		*d = DocumentType(code)
		return nil
	}
	*d = DocumentType(payload.Code)
	return nil
}
