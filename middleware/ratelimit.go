package middleware

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit limits requests per client ip, rate is formatted like "10-M"
func RateLimit(rate string) (func(http.Handler) http.Handler, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("parse rate %q: %w", rate, err)
	}

	instance := limiter.New(memory.NewStore(), parsed)
	m := stdlib.NewMiddleware(instance,
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			log.Warn().Str("remote", r.RemoteAddr).Str("path", r.URL.Path).Msg("rate limit reached")
			http.Error(w, "Too many attempts, try again later", http.StatusTooManyRequests)
		}),
	)
	return m.Handler, nil
}
