package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"marquee/internal/logging"
)

func TestLenientLogsBlankKeyAsNotRetryable(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	client, err := New(Options{Endpoint: "http://127.0.0.1:1", Logger: logger})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rows, ok := client.lenient(context.Background(), "  ")
	if ok || rows != nil {
		t.Fatalf("lenient = %v, %v; want nil, false", rows, ok)
	}

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if payload["level"] != "error" || payload[logging.FieldEventType] != "feed_request_invalid" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
	if payload["retryable"] != false {
		t.Fatalf("retryable = %#v, want false", payload["retryable"])
	}
	if id, _ := payload[logging.FieldCorrelationID].(string); id == "" {
		t.Fatalf("expected correlation id, got %#v", payload)
	}
}
