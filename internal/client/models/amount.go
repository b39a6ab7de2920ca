package models

import "github.com/shopspring/decimal"

// jsonNumber encodes a decimal as a bare JSON number. The backend parses
// amounts with float() and rejects quoted values.
type jsonNumber decimal.Decimal

func (n jsonNumber) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(n).String()), nil
}
