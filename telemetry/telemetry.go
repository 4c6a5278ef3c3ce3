// Package telemetry provides opt-in usage reporting for classql.
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"
)

// Event is one reported usage event
type Event struct {
	EventType    string         `json:"event_type"`
	Command      string         `json:"command,omitempty"`
	Provider     string         `json:"provider,omitempty"`
	Duration     *time.Duration `json:"duration,omitempty"`
	Error        string         `json:"error,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
	Version      string         `json:"version"`
	OS           string         `json:"os"`
	Architecture string         `json:"architecture"`
}

// Collector batches events and ships them in the background
type Collector struct {
	enabled       bool
	endpoint      string
	events        []Event
	mu            sync.Mutex
	httpClient    *http.Client
	version       string
	batchSize     int
	flushInterval time.Duration
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

var (
	globalCollector *Collector
	once            sync.Once
)

// Init initializes the global collector. Reporting stays off unless the
// user opted in and no kill switch is set.
func Init(version string, enabled bool) {
	once.Do(func() {
		globalCollector = &Collector{
			enabled:       enabled && !isDisabled(),
			endpoint:      getEndpoint(),
			events:        make([]Event, 0, 100),
			httpClient:    &http.Client{Timeout: 5 * time.Second},
			version:       version,
			batchSize:     10,
			flushInterval: 30 * time.Second,
			stopChan:      make(chan struct{}),
		}

		if globalCollector.enabled {
			globalCollector.startBackgroundFlush()
		}
	})
}

// RecordCommand records a command execution event
func RecordCommand(command string, provider string, duration time.Duration, err error) {
	if globalCollector == nil || !globalCollector.enabled {
		return
	}

	event := Event{
		EventType:    "command",
		Command:      command,
		Provider:     provider,
		Duration:     &duration,
		Timestamp:    time.Now(),
		Version:      globalCollector.version,
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
	}

	if err != nil {
		event.Error = err.Error()
	}

	globalCollector.recordEvent(event)
}

// recordEvent adds an event to the collector
func (tc *Collector) recordEvent(event Event) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.events = append(tc.events, event)

	// Flush if batch size reached
	if len(tc.events) >= tc.batchSize {
		go tc.flush()
	}
}

// flush sends collected events to the endpoint
func (tc *Collector) flush() {
	tc.mu.Lock()
	if len(tc.events) == 0 {
		tc.mu.Unlock()
		return
	}

	events := make([]Event, len(tc.events))
	copy(events, tc.events)
	tc.events = tc.events[:0]
	tc.mu.Unlock()

	tc.sendEvents(events)
}

// sendEvents ships one batch. Failures are dropped silently; reporting
// must never break the CLI.
func (tc *Collector) sendEvents(events []Event) {
	if len(events) == 0 {
		return
	}

	payload := map[string]interface{}{
		"events": events,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "POST", tc.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", fmt.Sprintf("classql/%s", tc.version))

	resp, err := tc.httpClient.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)
}

// startBackgroundFlush starts a background goroutine to flush events periodically
func (tc *Collector) startBackgroundFlush() {
	tc.wg.Add(1)
	go func() {
		defer tc.wg.Done()
		ticker := time.NewTicker(tc.flushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				tc.flush()
			case <-tc.stopChan:
				// Final flush before stopping
				tc.flush()
				return
			}
		}
	}()
}

// Shutdown stops the collector and flushes remaining events
func Shutdown() {
	if globalCollector == nil || !globalCollector.enabled {
		return
	}

	close(globalCollector.stopChan)
	globalCollector.wg.Wait()
}

// isDisabled checks the kill switches: the environment variable, the
// --no-telemetry flag and CI environments.
func isDisabled() bool {
	if v := os.Getenv("CLASSQL_TELEMETRY_DISABLED"); v == "1" || v == "true" {
		return true
	}

	if os.Getenv("CI") != "" {
		return true
	}

	for _, arg := range os.Args {
		if arg == "--no-telemetry" {
			return true
		}
	}

	return false
}

// getEndpoint returns the reporting endpoint URL
func getEndpoint() string {
	endpoint := os.Getenv("CLASSQL_TELEMETRY_ENDPOINT")
	if endpoint == "" {
		return "https://telemetry.classql.dev/events"
	}
	return endpoint
}

// IsEnabled returns whether reporting is enabled
func IsEnabled() bool {
	return globalCollector != nil && globalCollector.enabled
}
