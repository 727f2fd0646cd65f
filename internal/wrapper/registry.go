package wrapper

import (
	"context"
	"time"

	"esgweb/internal/dto/dart_dto"
	"esgweb/internal/schema"
)

// Registry resolves registration numbers through the backend DART lookup
type Registry struct {
	registryClient registryClient
	timeout        time.Duration
}

func NewRegistry(registryClient registryClient,
	timeout time.Duration,
) *Registry {
	return &Registry{
		registryClient: registryClient,
		timeout:        timeout,
	}
}

func (r *Registry) GetCompanies(ctx context.Context, records []schema.RegistryRecord) ([]schema.RegistryRecord, error) {
	if len(records) == 0 {
		return []schema.RegistryRecord{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	companies, err := r.registryClient.LookupCompanies(ctx, registryToDto(records))
	if err != nil {
		return nil, err
	}

	return registryToSchema(companies), nil
}

func registryToSchema(companies *dart_dto.ResponseBody) []schema.RegistryRecord {
	records := make([]schema.RegistryRecord, 0, len(companies.Rows))

	for _, val := range companies.Rows {
		records = append(records, schema.RegistryRecord{
			RegistrationNumber: val.RegistrationNumber,
			Company: schema.RegistryCompany{
				CorpCode:  val.Company.CorpCode,
				CorpName:  val.Company.CorpName,
				CEOName:   val.Company.CEOName,
				Address:   val.Company.Address,
				StockCode: val.Company.StockCode,
				// DART corp_cls: Y KOSPI, K KOSDAQ, N KONEX, E other
				Listed: val.Company.CorpCls == "Y" || val.Company.CorpCls == "K" || val.Company.CorpCls == "N",
			},
		})
	}
	return records
}

func registryToDto(records []schema.RegistryRecord) dart_dto.RequestBody {
	rows := make([]dart_dto.RequestRow, 0, len(records))

	for _, val := range records {
		rows = append(rows, dart_dto.RequestRow{
			RegistrationNumber: val.RegistrationNumber,
		})
	}

	return dart_dto.RequestBody{
		Rows: rows,
	}
}
