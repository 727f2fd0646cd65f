package schema

import "time"

// PartnerStatus lifecycle state of a partner company on the backend
type PartnerStatus string

const (
	PartnerActive   PartnerStatus = "ACTIVE"
	PartnerInactive PartnerStatus = "INACTIVE"
)

// PartnerCompany model of a supply-chain partner
type PartnerCompany struct {
	ID                 int64
	Name               string
	RegistrationNumber string
	CorpCode           string
	StockCode          string
	CEOName            string
	Address            string
	ContractStartDate  time.Time
	Status             PartnerStatus
	CreatedAt          time.Time
}

// PartnerQuery paging and filter parameters of a partner list
type PartnerQuery struct {
	Page    int
	Size    int
	Keyword string
}

// PartnerPage one page of partner companies
type PartnerPage struct {
	Items         []PartnerCompany
	Page          int
	Size          int
	TotalPages    int
	TotalElements int64
}

// HasPrev reports whether a previous page exists
func (p PartnerPage) HasPrev() bool {
	return p.Page > 0
}

// HasNext reports whether a next page exists
func (p PartnerPage) HasNext() bool {
	return p.Page+1 < p.TotalPages
}

// PrevPage index of the previous page
func (p PartnerPage) PrevPage() int {
	if p.Page == 0 {
		return 0
	}
	return p.Page - 1
}

// NextPage index of the next page
func (p PartnerPage) NextPage() int {
	return p.Page + 1
}
