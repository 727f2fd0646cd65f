package schema

import "github.com/shopspring/decimal"

// MaterialAssignment raw material assigned to a partner company
type MaterialAssignment struct {
	ID             int64
	PartnerID      int64
	MaterialCode   string
	MaterialName   string
	Category       string
	Unit           string
	EmissionFactor decimal.NullDecimal
}
