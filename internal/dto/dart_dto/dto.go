package dart_dto

type RequestRow struct {
	RegistrationNumber string `json:"businessNumber"`
}

type RequestBody struct {
	Rows []RequestRow `json:"rows"`
}

type Company struct {
	CorpCode  string `json:"corp_code"`
	CorpName  string `json:"corp_name"`
	CEOName   string `json:"ceo_nm"`
	Address   string `json:"adres"`
	StockCode string `json:"stock_code"`
	CorpCls   string `json:"corp_cls"`
}

type ResponseRow struct {
	RegistrationNumber string  `json:"businessNumber"`
	Company            Company `json:"company"`
}

type ResponseBody struct {
	Rows []ResponseRow `json:"rows"`
}
