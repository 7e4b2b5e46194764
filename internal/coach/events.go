package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Event is one recorded analysis or chat interaction.
type Event struct {
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}

// EventLogger records engine activity for later review. Implementations
// must tolerate being called concurrently.
type EventLogger interface {
	Log(ctx context.Context, eventType string, data any) error
}

// NopEventLogger discards events. Used when no database is configured.
type NopEventLogger struct{}

func (NopEventLogger) Log(context.Context, string, any) error { return nil }

// MemoryEventLogger keeps events in memory, for tests.
type MemoryEventLogger struct {
	mu     sync.Mutex
	events []Event
}

func (l *MemoryEventLogger) Log(_ context.Context, eventType string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding event data: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, Event{EventType: eventType, Data: payload, CreatedAt: time.Now()})
	return nil
}

// Events returns a copy of everything logged so far.
func (l *MemoryEventLogger) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// PostgresEventLogger persists events to the coach_events table.
type PostgresEventLogger struct {
	pool *pgxpool.Pool
}

func NewPostgresEventLogger(pool *pgxpool.Pool) *PostgresEventLogger {
	return &PostgresEventLogger{pool: pool}
}

// EventsSchema creates the coach_events table if missing. Called once
// at startup when a database is configured.
const EventsSchema = `
CREATE TABLE IF NOT EXISTS coach_events (
	id          BIGSERIAL PRIMARY KEY,
	event_type  TEXT NOT NULL,
	data        JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func (l *PostgresEventLogger) Init(ctx context.Context) error {
	if _, err := l.pool.Exec(ctx, EventsSchema); err != nil {
		return fmt.Errorf("creating coach_events table: %w", err)
	}
	return nil
}

func (l *PostgresEventLogger) Log(ctx context.Context, eventType string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding event data: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err = l.pool.Exec(ctx,
		`INSERT INTO coach_events (event_type, data) VALUES ($1, $2)`,
		eventType, payload)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}
