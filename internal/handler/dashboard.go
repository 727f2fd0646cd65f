package handler

import (
	"net/http"

	"esgweb/internal/dashboard"
	"esgweb/internal/schema"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type dashboardData struct {
	Summary dashboard.Summary
}

func (p *Pages) Dashboard(w http.ResponseWriter, r *http.Request) {
	year := intParam(r, "year", p.now().Year())

	var (
		records  []schema.Scope2Record
		partners int64
		g        errgroup.Group
	)
	// only the emission load toasts, the page renders with what arrived
	g.Go(func() error {
		records, _ = p.Scope2.List(r.Context(), year)
		return nil
	})
	g.Go(func() error {
		partners, _ = p.Partners.Count(r.Context())
		return nil
	})
	_ = g.Wait()

	p.render(w, r, http.StatusOK, "dashboard", "Dashboard", dashboardData{
		Summary: dashboard.Summarize(year, records, partners),
	})
}

// Chart standalone chart document embedded by the dashboard
func (p *Pages) Chart(w http.ResponseWriter, r *http.Request) {
	year := intParam(r, "year", p.now().Year())

	records, ok := p.Scope2.Records(r.Context(), year)
	if !ok {
		http.Error(w, "Chart data unavailable", http.StatusBadGateway)
		return
	}

	var (
		html string
		err  error
	)
	switch mux.Vars(r)["name"] {
	case "monthly":
		html, err = dashboard.MonthlyChart(year, records)
	default:
		html, err = dashboard.CategoryChart(year, records)
	}
	if err != nil {
		log.Error().Err(err).Msg("couldn't render chart")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}
