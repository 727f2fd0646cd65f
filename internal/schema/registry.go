package schema

// RegistryRecord DART registry entry of a company, keyed by registration number
type RegistryRecord struct {
	RegistrationNumber string
	Priority           int
	Company            RegistryCompany
}

// RegistryCompany company data resolved from the DART registry
type RegistryCompany struct {
	CorpCode  string
	CorpName  string
	CEOName   string
	Address   string
	StockCode string
	Listed    bool
}

// Found reports whether the registry resolved the record
func (r RegistryRecord) Found() bool {
	return r.Company.CorpCode != ""
}
