package export

import (
	"fmt"
	"time"

	"esgweb/internal/schema"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	partnerSheet = "Partners"
	dateLayout   = "2006-01-02"
)

var partnerHeader = []any{
	"ID", "Company", "Registration number", "DART corp code", "Stock code",
	"CEO", "Address", "Contract start", "Status", "Registered at",
}

// Partners writes the partner list as an xlsx workbook
func Partners(partners []schema.PartnerCompany) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("couldn't close workbook")
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), partnerSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(partnerSheet, "A1", &partnerHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(partnerSheet, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	for i, p := range partners {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			p.ID, p.Name, p.RegistrationNumber, p.CorpCode, p.StockCode,
			p.CEOName, p.Address, dateCell(p.ContractStartDate),
			string(p.Status), dateCell(p.CreatedAt),
		}
		if err := f.SetSheetRow(partnerSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write partner %d: %w", p.ID, err)
		}
	}

	if err := f.SetColWidth(partnerSheet, "B", "G", 22); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}
	if err := f.AutoFilter(partnerSheet, fmt.Sprintf("A1:J%d", len(partners)+1), nil); err != nil {
		return nil, fmt.Errorf("auto filter: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func dateCell(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
