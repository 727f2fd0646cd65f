package partner_dto

// Partner partner company as exchanged with the backend
type Partner struct {
	ID                int64  `json:"id,omitempty"`
	CompanyName       string `json:"companyName"`
	BusinessNumber    string `json:"businessNumber"`
	CorpCode          string `json:"corpCode,omitempty"`
	StockCode         string `json:"stockCode,omitempty"`
	CEOName           string `json:"ceoName,omitempty"`
	Address           string `json:"address,omitempty"`
	ContractStartDate string `json:"contractStartDate,omitempty"`
	Status            string `json:"status,omitempty"`
	CreatedAt         string `json:"createdAt,omitempty"`
}

// Page paged partner list
type Page struct {
	Content       []Partner `json:"content"`
	Number        int       `json:"number"`
	Size          int       `json:"size"`
	TotalPages    int       `json:"totalPages"`
	TotalElements int64     `json:"totalElements"`
}
