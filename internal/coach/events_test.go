package coach_test

import (
	"context"
	"sync"
	"testing"

	"github.com/examcoach-ai/coach-server/internal/coach"
)

func TestMemoryEventLogger(t *testing.T) {
	logger := &coach.MemoryEventLogger{}

	if err := logger.Log(context.Background(), "chat", map[string]any{"message": "hi"}); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	events := logger.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].EventType != "chat" {
		t.Errorf("EventType = %q, want chat", events[0].EventType)
	}
	if events[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestMemoryEventLogger_Concurrent(t *testing.T) {
	logger := &coach.MemoryEventLogger{}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Log(context.Background(), "analysis", map[string]int{"n": 1})
		}()
	}
	wg.Wait()

	if got := len(logger.Events()); got != 20 {
		t.Errorf("got %d events, want 20", got)
	}
}

func TestMemoryEventLogger_RejectsUnencodableData(t *testing.T) {
	logger := &coach.MemoryEventLogger{}

	if err := logger.Log(context.Background(), "bad", make(chan int)); err == nil {
		t.Error("Log() error = nil, want encoding error")
	}
}

func TestNopEventLogger(t *testing.T) {
	if err := (coach.NopEventLogger{}).Log(context.Background(), "anything", nil); err != nil {
		t.Errorf("Log() error = %v, want nil", err)
	}
}
