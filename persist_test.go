package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfig(t *testing.T) DiagramConfiguration {
	t.Helper()
	s := testScene(box("amp", 50, 50), box("sub", 300, 120))
	drawLine(t, s, "amp", Point{200, 200}, Point{250, 250})
	s.SetComponentColor("sub", "#a855f7")
	s.SetVisibility("sub", false)
	return s.Snapshot(VehicleVan, "#22c55e")
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	cfg := sampleConfig(t)

	store, err := NewFileSlotStore(dir)
	require.NoError(t, err)
	entry, err := store.SaveSlot(ctx, "system-1", 1, "daily driver", cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Slot)
	assert.False(t, entry.SavedAt.IsZero())

	// A fresh store instance reading the same directory must see a
	// structurally identical configuration.
	reopened, err := NewFileSlotStore(dir)
	require.NoError(t, err)
	entries, err := reopened.LoadSlots(ctx, "system-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "daily driver", entries[0].Name)
	assert.Equal(t, cfg, entries[0].Data)

	restored := NewScene()
	restored.Restore(entries[0].Data)
	assert.Equal(t, cfg.Components, restored.Components())
	assert.Equal(t, cfg.Connections, restored.Connections())
}

func TestFileStorePreservesOtherSlots(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	store, err := NewFileSlotStore(dir)
	require.NoError(t, err)

	first := sampleConfig(t)
	second := DiagramConfiguration{VehicleType: VehicleSUV, VehicleColor: "#ef4444"}

	_, err = store.SaveSlot(ctx, "system-1", 1, "one", first)
	require.NoError(t, err)
	_, err = store.SaveSlot(ctx, "system-1", 2, "two", second)
	require.NoError(t, err)

	// Overwrite slot 1; slot 2 must be untouched.
	_, err = store.SaveSlot(ctx, "system-1", 1, "one v2", DiagramConfiguration{VehicleType: VehicleSedan})
	require.NoError(t, err)

	entries, err := store.LoadSlots(ctx, "system-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "one v2", entries[0].Name)
	assert.Equal(t, "two", entries[1].Name)
	assert.Equal(t, second, entries[1].Data)
}

func TestFileStoreSeparatesDiagramIDs(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	store, err := NewFileSlotStore(dir)
	require.NoError(t, err)

	_, err = store.SaveSlot(ctx, "system-a", 1, "a", DiagramConfiguration{VehicleType: VehicleSUV})
	require.NoError(t, err)

	entries, err := store.LoadSlots(ctx, "system-b")
	require.NoError(t, err)
	assert.Empty(t, entries, "missing slots are just empty, not an error")
}

func TestFileStoreSlotRange(t *testing.T) {
	store, err := NewFileSlotStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.SaveSlot(context.Background(), "x", 0, "", DiagramConfiguration{})
	assert.Error(t, err)
	_, err = store.SaveSlot(context.Background(), "x", 4, "", DiagramConfiguration{})
	assert.Error(t, err)
}

func TestFileStoreOpaqueIDsAreSanitized(t *testing.T) {
	store, err := NewFileSlotStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.SaveSlot(ctx, "../weird id:1", 1, "n", DiagramConfiguration{})
	require.NoError(t, err)
	entries, err := store.LoadSlots(ctx, "../weird id:1")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoresHonorCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	file, err := NewFileSlotStore(t.TempDir())
	require.NoError(t, err)
	_, err = file.SaveSlot(ctx, "x", 1, "", DiagramConfiguration{})
	assert.Error(t, err)
	_, err = file.LoadSlots(ctx, "x")
	assert.Error(t, err)

	mem := NewMemSlotStore()
	_, err = mem.SaveSlot(ctx, "x", 1, "", DiagramConfiguration{})
	assert.Error(t, err)
	_, err = mem.LoadSlots(ctx, "x")
	assert.Error(t, err)
}

func TestMemStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemSlotStore()
	cfg := sampleConfig(t)

	_, err := store.SaveSlot(ctx, "system-1", 2, "bench", cfg)
	require.NoError(t, err)

	entries, err := store.LoadSlots(ctx, "system-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Slot)
	assert.Equal(t, cfg, entries[0].Data)
}
