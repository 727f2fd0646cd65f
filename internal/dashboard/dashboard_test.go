package dashboard

import (
	"testing"

	"esgweb/internal/schema"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records() []schema.Scope2Record {
	return []schema.Scope2Record{
		{ReportingMonth: 1, FacilityName: "Ulsan", Category: "electricity", Emission: decimal.RequireFromString("100.5")},
		{ReportingMonth: 1, FacilityName: "Pohang", Category: "steam", Emission: decimal.RequireFromString("20")},
		{ReportingMonth: 3, FacilityName: "Ulsan", Category: "electricity", Emission: decimal.RequireFromString("50")},
		{ReportingMonth: 13, FacilityName: "Ulsan", Category: "", Emission: decimal.RequireFromString("1")},
	}
}

func TestMonthly(t *testing.T) {
	points := Monthly(records())

	require.Len(t, points, 12)
	assert.Equal(t, "01", points[0].Label)
	assert.True(t, decimal.RequireFromString("120.5").Equal(points[0].Value))
	assert.True(t, points[1].Value.IsZero())
	assert.True(t, decimal.RequireFromString("50").Equal(points[2].Value))
}

func TestByCategory(t *testing.T) {
	points := ByCategory(records())

	require.Len(t, points, 3)
	assert.Equal(t, "electricity", points[0].Label)
	assert.Equal(t, "steam", points[1].Label)
	assert.Equal(t, "other", points[2].Label)
}

func TestSummarize(t *testing.T) {
	s := Summarize(2024, records(), 7)

	assert.Equal(t, 4, s.Records)
	assert.Equal(t, 2, s.Facilities)
	assert.Equal(t, int64(7), s.Partners)
	assert.True(t, decimal.RequireFromString("171.5").Equal(s.Total))
}

func TestCharts(t *testing.T) {
	bar, err := MonthlyChart(2024, records())
	require.NoError(t, err)
	assert.Contains(t, bar, "Scope 2 emissions 2024")
	assert.Contains(t, bar, "echarts")

	pie, err := CategoryChart(2024, nil)
	require.NoError(t, err)
	assert.Contains(t, pie, "Emissions by category 2024")
}
