package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/example/playersync/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockPlayerRepo implements secondary.PlayerRepository for testing.
type mockPlayerRepo struct {
	records   map[string]*secondary.PlayerRecord
	getErr    error
	upsertErr error
	listErr   error
}

func newMockPlayerRepo() *mockPlayerRepo {
	return &mockPlayerRepo{records: make(map[string]*secondary.PlayerRecord)}
}

func (m *mockPlayerRepo) GetByID(ctx context.Context, playerID string) (*secondary.PlayerRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if record, ok := m.records[playerID]; ok {
		return record, nil
	}
	return nil, fmt.Errorf("player %s: %w", playerID, secondary.ErrPlayerNotFound)
}

func (m *mockPlayerRepo) List(ctx context.Context) ([]*secondary.PlayerRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var records []*secondary.PlayerRecord
	for _, record := range m.records {
		records = append(records, record)
	}
	return records, nil
}

func (m *mockPlayerRepo) Upsert(ctx context.Context, playerID string, payload json.RawMessage, serverID int) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.records[playerID] = &secondary.PlayerRecord{
		PlayerID: playerID,
		LastSave: time.Now().UTC(),
		ServerID: serverID,
		Payload:  append(json.RawMessage(nil), payload...),
	}
	return nil
}

// seed inserts a record with an explicit last_save.
func (m *mockPlayerRepo) seed(playerID, payload string, lastSave time.Time) {
	m.records[playerID] = &secondary.PlayerRecord{
		PlayerID: playerID,
		LastSave: lastSave,
		Payload:  json.RawMessage(payload),
	}
}

// mockStatsRepo implements secondary.PlayerStatsRepository for testing.
type mockStatsRepo struct {
	rows      map[string]*secondary.PlayerStatsRecord
	ensureErr error
	addErr    error
}

func newMockStatsRepo() *mockStatsRepo {
	return &mockStatsRepo{rows: make(map[string]*secondary.PlayerStatsRecord)}
}

func (m *mockStatsRepo) GetByID(ctx context.Context, playerID string) (*secondary.PlayerStatsRecord, error) {
	if row, ok := m.rows[playerID]; ok {
		return row, nil
	}
	return nil, fmt.Errorf("stats for player %s: %w", playerID, secondary.ErrStatsNotFound)
}

func (m *mockStatsRepo) EnsureExists(ctx context.Context, playerID string) error {
	if m.ensureErr != nil {
		return m.ensureErr
	}
	if _, ok := m.rows[playerID]; !ok {
		m.rows[playerID] = &secondary.PlayerStatsRecord{PlayerID: playerID}
	}
	return nil
}

func (m *mockStatsRepo) row(playerID string) (*secondary.PlayerStatsRecord, error) {
	row, ok := m.rows[playerID]
	if !ok {
		return nil, fmt.Errorf("stats for player %s: %w", playerID, secondary.ErrStatsNotFound)
	}
	return row, nil
}

func (m *mockStatsRepo) AddDeltas(ctx context.Context, playerID string, kills, deaths, captures int64) error {
	if m.addErr != nil {
		return m.addErr
	}
	row, err := m.row(playerID)
	if err != nil {
		return err
	}
	row.Kills += kills
	row.Deaths += deaths
	row.Captures += captures
	return nil
}

func (m *mockStatsRepo) AddPlaytime(ctx context.Context, playerID string, seconds int64) error {
	row, err := m.row(playerID)
	if err != nil {
		return err
	}
	row.PlaytimeSeconds += seconds
	return nil
}

func (m *mockStatsRepo) IncrementKills(ctx context.Context, playerID string) error {
	return m.AddDeltas(ctx, playerID, 1, 0, 0)
}

func (m *mockStatsRepo) IncrementDeaths(ctx context.Context, playerID string) error {
	return m.AddDeltas(ctx, playerID, 0, 1, 0)
}

func (m *mockStatsRepo) IncrementCaptures(ctx context.Context, playerID string) error {
	return m.AddDeltas(ctx, playerID, 0, 0, 1)
}

// mockFileStore implements secondary.PlayerFileStore in memory.
type mockFileStore struct {
	available bool
	files     map[string]json.RawMessage
	mtimes    map[string]time.Time
	roster    []string
	readErr   map[string]error
	writeErr  map[string]error
}

func newMockFileStore() *mockFileStore {
	return &mockFileStore{
		available: true,
		files:     make(map[string]json.RawMessage),
		mtimes:    make(map[string]time.Time),
		readErr:   make(map[string]error),
		writeErr:  make(map[string]error),
	}
}

func (m *mockFileStore) Available() bool { return m.available }

func (m *mockFileStore) List(ctx context.Context) ([]string, error) {
	var ids []string
	for id := range m.files {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *mockFileStore) Read(ctx context.Context, playerID string) (json.RawMessage, error) {
	if err := m.readErr[playerID]; err != nil {
		return nil, err
	}
	payload, ok := m.files[playerID]
	if !ok {
		return nil, fmt.Errorf("no file for %s", playerID)
	}
	return payload, nil
}

func (m *mockFileStore) Write(ctx context.Context, playerID string, payload json.RawMessage) error {
	if err := m.writeErr[playerID]; err != nil {
		return err
	}
	m.files[playerID] = append(json.RawMessage(nil), payload...)
	m.mtimes[playerID] = time.Now()
	return nil
}

func (m *mockFileStore) ModTime(ctx context.Context, playerID string) (time.Time, error) {
	mt, ok := m.mtimes[playerID]
	if !ok {
		return time.Time{}, fmt.Errorf("no file for %s", playerID)
	}
	return mt, nil
}

func (m *mockFileStore) Exists(ctx context.Context, playerID string) (bool, error) {
	_, ok := m.files[playerID]
	return ok, nil
}

func (m *mockFileStore) Roster(ctx context.Context) ([]string, error) {
	return m.roster, nil
}

// put places a file with an explicit mtime.
func (m *mockFileStore) put(playerID, payload string, mtime time.Time) {
	m.files[playerID] = json.RawMessage(payload)
	m.mtimes[playerID] = mtime
}

// ============================================================================
// Test Helpers
// ============================================================================

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughResolver accepts any handle unchanged.
func passthroughResolver(handle string) (string, error) {
	return handle, nil
}
