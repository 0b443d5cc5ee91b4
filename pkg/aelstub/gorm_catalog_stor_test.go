package aelstub

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormLockROMs(t *testing.T) {
	stor := NewGormCatalogStor(nil)

	unlock := stor.lockROMs([]map[string]any{{"id": "b"}, {"id": "a"}, {"id": "a"}, {"m_name": "no id"}, nil})
	assert.Equal(t, 2, stor.locks.Len(), "one lock per distinct id")

	acquired := make(chan struct{})
	go func() {
		stor.locks.AcquireLock("rom:a")
		close(acquired)
		stor.locks.ReleaseLock("rom:a")
	}()

	select {
	case <-acquired:
		t.Fatal("rom lock was available while AddROMs held it")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("rom lock was not released")
	}
}

func TestGormAddROMsWaitsForROMLock(t *testing.T) {
	db, err := OpenDB(DriverSQLite, filepath.Join(t.TempDir(), "stub.db"))
	if err == nil {
		err = CreateTables(db)
	}
	if err != nil {
		t.Skipf("sqlite not available: %s", err)
	}

	stor := NewGormCatalogStor(db)
	_, err = stor.AddROMs("col-1", []map[string]any{{"id": "rom-1", "m_name": "Game A"}})
	require.NoError(t, err)

	// Hold the rom lock the way an in-flight UpdateROM would.
	stor.locks.AcquireLock("rom:rom-1")

	done := make(chan error, 1)
	go func() {
		_, err := stor.AddROMs("col-1", []map[string]any{{"id": "rom-1", "m_name": "Game A (Rev 1)"}})
		done <- err
	}()

	select {
	case <-done:
		t.Fatal("replacing a rom did not wait for its lock")
	case <-time.After(50 * time.Millisecond):
	}

	stor.locks.ReleaseLock("rom:rom-1")
	require.NoError(t, <-done)

	rom, err := stor.GetROM("rom-1")
	require.NoError(t, err)
	assert.Equal(t, "Game A (Rev 1)", rom["m_name"])
}
