package registryv1dto

import (
	"errors"
	"fmt"
)

// LookupRequest dto of registry lookup api
type LookupRequest struct {
	RegistrationNumbers []RegistrationNumber `json:"registrationNumbers"`
}

// RegistrationNumber registration number with cache priority
type RegistrationNumber struct {
	Number   string `json:"registrationNumber"`
	Priority int    `json:"priority"`
}

// Validate validation of request
func (r LookupRequest) Validate() error {
	if r.RegistrationNumbers == nil {
		return errors.New("wrong request, missed registration numbers")
	}
	for _, n := range r.RegistrationNumbers {
		if n.Priority < 0 {
			return fmt.Errorf("wrong request, negative priority for %q", n.Number)
		}
	}
	return nil
}

// Company response structure of a registry company
type Company struct {
	CorpCode  string `json:"corpCode"`
	CorpName  string `json:"corpName"`
	CEOName   string `json:"ceoName"`
	Address   string `json:"address"`
	StockCode string `json:"stockCode,omitempty"`
	Listed    bool   `json:"listed"`
}

// ResponseRow structure for response row
type ResponseRow struct {
	RegistrationNumber string  `json:"registrationNumber"`
	Found              bool    `json:"found"`
	Company            Company `json:"company"`
}

// ResponseBody structure for response
type ResponseBody struct {
	Rows []ResponseRow `json:"rows"`
}
