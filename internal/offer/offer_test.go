package offer

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestOfferDecodesBackendPayload(t *testing.T) {
	t.Parallel()

	payload := `{
		"id": "o-1",
		"title": "` + strings.Repeat("t", 70) + `",
		"subtitle": "sub",
		"description": "desc",
		"price": {"amount": 997, "currency": "USD", "interval": "one-time"},
		"features": ["a", "b"],
		"template": "elegant",
		"brandColors": {"primary": "#111111", "secondary": "#222222", "accent": "#333333"},
		"logoUrl": null,
		"images": [],
		"editCount": 2,
		"editLimit": 5,
		"createdAt": "2024-05-01T10:11:12.123456",
		"updatedAt": "2024-05-02T10:11:12Z",
		"pdfUrl": null
	}`
	var got Offer
	if err := json.Unmarshal([]byte(payload), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got.Draft = got.Draft.Normalize()
	if got.ID != "o-1" || got.Template != TemplateElegant {
		t.Fatalf("offer = %+v", got)
	}
	if len(got.Title) != MaxTitleLen {
		t.Fatalf("title len = %d, want %d", len(got.Title), MaxTitleLen)
	}
	wantCreated := time.Date(2024, 5, 1, 10, 11, 12, 123456000, time.UTC)
	if !got.CreatedAt.Equal(wantCreated) {
		t.Fatalf("createdAt = %v, want %v", got.CreatedAt, wantCreated)
	}
	if got.EditsRemaining() != 3 {
		t.Fatalf("edits remaining = %d, want 3", got.EditsRemaining())
	}
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNormalizeFallbacks(t *testing.T) {
	t.Parallel()

	d := Draft{Template: "neon", Price: Price{Amount: -3, Currency: "XYZ"}, EditCount: -1}
	got := d.Normalize()
	if got.Template != DefaultTemplate || got.Price.Currency != CurrencyUSD || got.Price.Interval != IntervalOneTime {
		t.Fatalf("normalized = %+v", got)
	}
	if got.Price.Amount != 0 || got.EditCount != 0 {
		t.Fatalf("normalized = %+v", got)
	}
}

func TestWordCount(t *testing.T) {
	t.Parallel()

	if got := WordCount("  one two\nthree  "); got != 3 {
		t.Fatalf("WordCount = %d, want 3", got)
	}
}
