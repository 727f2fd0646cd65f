package dashboard

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"esgweb/internal/schema"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/shopspring/decimal"
)

const chartHeight = "360px"

// Point one labelled value of a chart series
type Point struct {
	Label string
	Value decimal.Decimal
}

// Summary headline figures of the dashboard
type Summary struct {
	Year       int
	Total      decimal.Decimal
	Records    int
	Facilities int
	Partners   int64
}

func Summarize(year int, records []schema.Scope2Record, partners int64) Summary {
	facilities := make(map[string]struct{})
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Emission)
		facilities[r.FacilityName] = struct{}{}
	}
	return Summary{
		Year:       year,
		Total:      total,
		Records:    len(records),
		Facilities: len(facilities),
		Partners:   partners,
	}
}

// Monthly emissions summed per reporting month, all twelve months present
func Monthly(records []schema.Scope2Record) []Point {
	sums := make([]decimal.Decimal, 12)
	for _, r := range records {
		if r.ReportingMonth < 1 || r.ReportingMonth > 12 {
			continue
		}
		sums[r.ReportingMonth-1] = sums[r.ReportingMonth-1].Add(r.Emission)
	}

	points := make([]Point, 12)
	for i := range sums {
		points[i] = Point{Label: fmt.Sprintf("%02d", i+1), Value: sums[i]}
	}
	return points
}

// ByCategory emissions summed per category, largest first
func ByCategory(records []schema.Scope2Record) []Point {
	sums := make(map[string]decimal.Decimal)
	for _, r := range records {
		category := r.Category
		if category == "" {
			category = "other"
		}
		sums[category] = sums[category].Add(r.Emission)
	}

	points := make([]Point, 0, len(sums))
	for label, value := range sums {
		points = append(points, Point{Label: label, Value: value})
	}
	sort.Slice(points, func(i, j int) bool {
		if c := points[i].Value.Cmp(points[j].Value); c != 0 {
			return c > 0
		}
		return points[i].Label < points[j].Label
	})
	return points
}

// MonthlyChart bar chart page of Monthly
func MonthlyChart(year int, records []schema.Scope2Record) (string, error) {
	points := Monthly(records)

	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(fmt.Sprintf("Scope 2 emissions %d", year), "kgCO2eq per month")...)

	labels := make([]string, len(points))
	data := make([]opts.BarData, len(points))
	for i, p := range points {
		labels[i] = p.Label
		data[i] = opts.BarData{Name: p.Label, Value: p.Value.InexactFloat64()}
	}
	bar.SetXAxis(labels).AddSeries("Scope 2", data)
	return render(bar)
}

// CategoryChart pie chart page of ByCategory
func CategoryChart(year int, records []schema.Scope2Record) (string, error) {
	points := ByCategory(records)

	pie := charts.NewPie()
	pie.SetGlobalOptions(globalOptions(fmt.Sprintf("Emissions by category %d", year), "kgCO2eq")...)

	data := make([]opts.PieData, len(points))
	for i, p := range points {
		data[i] = opts.PieData{Name: p.Label, Value: p.Value.InexactFloat64()}
	}
	pie.AddSeries("Category", data)
	return render(pie)
}

func globalOptions(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "100%",
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func render(chart interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return buf.String(), nil
}
