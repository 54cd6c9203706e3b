package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/azkar-labs/azkar-bot/internal/errors"
)

// Sources maps each category to its upstream URL.
type Sources struct {
	Morning    string `mapstructure:"morning"`
	Evening    string `mapstructure:"evening"`
	PostPrayer string `mapstructure:"post_prayer"`
	General    string `mapstructure:"general"`
}

// DefaultSources points at the public muslimKit/Adhkar JSON collections.
func DefaultSources() Sources {
	return Sources{
		Morning:    "https://ahegazy.github.io/muslimKit/json/azkar_sabah.json",
		Evening:    "https://ahegazy.github.io/muslimKit/json/azkar_massa.json",
		PostPrayer: "https://ahegazy.github.io/muslimKit/json/PostPrayer_azkar.json",
		General:    "https://raw.githubusercontent.com/rn0x/Adhkar-json/main/adhkar.json",
	}
}

// HTTPProvider fetches reminder sets over HTTP. Repeated upstream failures
// trip a circuit breaker so sweeps stop hammering a dead host.
type HTTPProvider struct {
	client  *http.Client
	sources Sources
	breaker *apperrors.CircuitBreaker
}

var _ Provider = (*HTTPProvider)(nil)

// NewHTTPProvider builds a provider with the given sources and timeout.
func NewHTTPProvider(sources Sources, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPProvider{
		client:  &http.Client{Timeout: timeout},
		sources: sources,
		breaker: apperrors.NewCircuitBreaker(),
	}
}

// FetchReminderSet downloads and decodes the collection for category,
// retrying transient failures.
func (p *HTTPProvider) FetchReminderSet(ctx context.Context, category Category) ([]Reminder, error) {
	url, err := p.urlFor(category)
	if err != nil {
		return nil, err
	}

	var reminders []Reminder
	err = apperrors.WithRetry(ctx, func() error {
		return p.breaker.Call(func() error {
			var fetchErr error
			reminders, fetchErr = p.fetch(ctx, url, category)
			return fetchErr
		})
	})
	if err != nil {
		return nil, err
	}

	return reminders, nil
}

func (p *HTTPProvider) fetch(ctx context.Context, url string, category Category) ([]Reminder, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.NewProviderError(string(category), err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, apperrors.NewProviderError(string(category), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewProviderError(string(category), fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, apperrors.NewProviderError(string(category), err)
	}

	reminders, err := decodeReminderSet(body)
	if err != nil {
		return nil, apperrors.NewProviderError(string(category), err)
	}

	return reminders, nil
}

func (p *HTTPProvider) urlFor(category Category) (string, error) {
	switch category {
	case CategoryMorning:
		return p.sources.Morning, nil
	case CategoryEvening:
		return p.sources.Evening, nil
	case CategoryPostPrayer:
		return p.sources.PostPrayer, nil
	case CategoryGeneral:
		return p.sources.General, nil
	default:
		return "", apperrors.NewProviderError(string(category), fmt.Errorf("unknown category"))
	}
}

// decodeReminderSet accepts both upstream shapes: a bare array of items or
// an object wrapping the array in a "content" field. Item field names vary
// between collections, so each known alias is tried in order.
func decodeReminderSet(data []byte) ([]Reminder, error) {
	var items []map[string]any

	if err := json.Unmarshal(data, &items); err != nil {
		var wrapper struct {
			Content []map[string]any `json:"content"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil || len(wrapper.Content) == 0 {
			return nil, fmt.Errorf("unusable reminder payload")
		}
		items = wrapper.Content
	}

	reminders := make([]Reminder, 0, len(items))
	for _, item := range items {
		text := stringField(item, "zekr", "ARABIC", "text", "content")
		if text == "" {
			continue
		}

		repeat := intField(item, "repeat", "REPEAT", "count")
		if repeat < 1 {
			repeat = 1
		}

		reminders = append(reminders, Reminder{Text: text, Repeat: repeat})
	}

	if len(reminders) == 0 {
		return nil, fmt.Errorf("reminder payload contained no usable items")
	}

	return reminders, nil
}

func stringField(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := item[key].(string); ok && value != "" {
			return value
		}
	}

	return ""
}

func intField(item map[string]any, keys ...string) int {
	for _, key := range keys {
		switch value := item[key].(type) {
		case float64:
			return int(value)
		case string:
			if n, err := strconv.Atoi(value); err == nil {
				return n
			}
		}
	}

	return 0
}
