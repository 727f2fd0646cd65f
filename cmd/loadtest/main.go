package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	registryv1dto "esgweb/internal/dto/registry_v1_dto"
	"esgweb/internal/env"
	"esgweb/internal/session"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func generateRandomPayload(maxRows int) ([]byte, error) {
	numRows := rand.Intn(maxRows) + 1
	rows := make([]registryv1dto.RegistrationNumber, numRows)
	for i := 0; i < numRows; i++ {
		rows[i] = registryv1dto.RegistrationNumber{
			Number:   fmt.Sprintf("%03d-%02d-%05d", rand.Intn(1000), rand.Intn(100), rand.Intn(10000)),
			Priority: rand.Intn(50),
		}
	}
	return json.Marshal(registryv1dto.LookupRequest{RegistrationNumbers: rows})
}

// login signs in through the form and returns the session cookie
func login(baseURL, email, password string) (*http.Cookie, error) {
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	form := url.Values{"email": {email}, "password": {password}}
	resp, err := client.Post(baseURL+"/login", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName && cookie.Value != "" {
			return cookie, nil
		}
	}
	return nil, errors.New("login failed: " + resp.Status)
}

func main() {
	env.LoadEnv()
	if needTest := os.Getenv("NEED_TEST"); needTest != "true" {
		return
	}
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	baseURL := env.GetEnv("TARGET_URL", "http://localhost:8080")
	concurrency := flag.Int("concurrency", 100, "Number of concurrent workers")
	duration := flag.Duration("duration", 5*time.Second, "Duration of the load test")
	maxRows := flag.Int("maxRows", 200, "Maximum number of registration numbers in a payload")
	email := flag.String("email", env.GetEnv("LOADTEST_EMAIL", "loadtest@example.com"), "Login email")
	password := flag.String("password", env.GetEnv("LOADTEST_PASSWORD", "esg"), "Login password")
	flag.Parse()

	cookie, err := login(baseURL, *email, *password)
	if err != nil {
		log.Error().Err(err).Msg("couldn't sign in")
		os.Exit(1)
	}
	target := baseURL + "/api/v1/registry/lookup"

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	log.Info().
		Str("target", target).
		Int("concurrency", *concurrency).
		Dur("duration", *duration).
		Msg("Starting load test")

	startTime := time.Now()
	var wg sync.WaitGroup
	var failures int
	var failMu sync.Mutex

	latencyChan := make(chan time.Duration, 100000)

	var latencies []time.Duration
	var aggWg sync.WaitGroup
	aggWg.Add(1)
	go func() {
		defer aggWg.Done()
		for lat := range latencyChan {
			latencies = append(latencies, lat)
		}
	}()

	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			client := &http.Client{}
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				payload, err := generateRandomPayload(*maxRows)
				if err != nil {
					log.Error().Err(err).Int("worker", workerID).Msg("Error generating payload")
					continue
				}

				req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewBuffer(payload))
				if err != nil {
					log.Error().Err(err).Int("worker", workerID).Msg("Error creating request")
					continue
				}
				req.Header.Set("Content-Type", "application/json")
				req.AddCookie(cookie)

				reqStart := time.Now()
				resp, err := client.Do(req)
				latency := time.Since(reqStart)

				if resp != nil && resp.Body != nil {
					_ = resp.Body.Close()
				}
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					log.Error().Err(err).Int("worker", workerID).Msg("Error sending request or reading response")
				}
				if err != nil || resp.StatusCode != http.StatusOK {
					failMu.Lock()
					failures++
					failMu.Unlock()
				}
				latencyChan <- latency
			}
		}(i)
	}

	wg.Wait()
	close(latencyChan)
	aggWg.Wait()

	if len(latencies) > 0 {
		sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
		index := int(float64(len(latencies)) * 0.99)
		if index >= len(latencies) {
			index = len(latencies) - 1
		}
		log.Info().Str("99th_percentile", latencies[index].String()).Msg("99th percentile latency")
	}

	totalTime := time.Since(startTime).Seconds()
	log.Info().
		Int("total_requests", len(latencies)).
		Int("failures", failures).
		Float64("rps", float64(len(latencies))/totalTime).
		Msg("Load test completed")
}
