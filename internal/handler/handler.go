package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	registryv1dto "esgweb/internal/dto/registry_v1_dto"
	"esgweb/internal/schema"
	"esgweb/internal/service"

	"github.com/rs/zerolog/log"
)

// Handler batched DART registry lookup api
type Handler struct {
	registryGetter registryGetter
	requestTimeout time.Duration
}

func New(registryGetter registryGetter, timeout time.Duration) *Handler {
	return &Handler{
		registryGetter: registryGetter,
		requestTimeout: timeout,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	var request registryv1dto.LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := request.Validate(); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	reqStart := time.Now()
	result, err := h.registryGetter.Get(ctx, toModel(request.RegistrationNumbers))
	latency := time.Since(reqStart)

	log.Info().Str("latency", latency.String()).Int("requested", len(request.RegistrationNumbers)).Msg("registry lookup latency")

	if err != nil {
		log.Error().Err(err).Msg("registry lookup failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response := &registryv1dto.ResponseBody{Rows: convert(request.RegistrationNumbers, result)}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("couldn't write registry lookup response")
	}
}

func toModel(numbers []registryv1dto.RegistrationNumber) []schema.RegistryRecord {
	result := make([]schema.RegistryRecord, 0, len(numbers))
	for _, val := range numbers {
		result = append(result, schema.RegistryRecord{
			RegistrationNumber: val.Number,
			Priority:           val.Priority,
		})
	}
	return result
}

// convert answers one row per distinct requested number, unresolved ones with found=false
func convert(requested []registryv1dto.RegistrationNumber, records []schema.RegistryRecord) []registryv1dto.ResponseRow {
	byNumber := make(map[string]schema.RegistryRecord, len(records))
	for _, record := range records {
		byNumber[record.RegistrationNumber] = record
	}

	result := make([]registryv1dto.ResponseRow, 0, len(requested))
	seen := make(map[string]struct{}, len(requested))
	for _, val := range requested {
		number := service.NormalizeRegistrationNumber(val.Number)
		if _, ok := seen[number]; ok || number == "" {
			continue
		}
		seen[number] = struct{}{}

		record, ok := byNumber[number]
		row := registryv1dto.ResponseRow{
			RegistrationNumber: number,
			Found:              ok && record.Found(),
		}
		if row.Found {
			row.Company = registryv1dto.Company{
				CorpCode:  record.Company.CorpCode,
				CorpName:  record.Company.CorpName,
				CEOName:   record.Company.CEOName,
				Address:   record.Company.Address,
				StockCode: record.Company.StockCode,
				Listed:    record.Company.Listed,
			}
		}
		result = append(result, row)
	}
	return result
}
