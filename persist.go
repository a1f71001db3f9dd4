package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// SlotEntry wraps one saved configuration. SavedAt marshals as RFC 3339.
type SlotEntry struct {
	Slot    int                  `json:"slot"`
	Name    string               `json:"name"`
	SavedAt time.Time            `json:"saved_at"`
	Data    DiagramConfiguration `json:"data"`
}

// SlotStore is the persistence boundary: three named slots per diagram
// id, the configuration itself treated as an opaque blob.
type SlotStore interface {
	LoadSlots(ctx context.Context, diagramID string) ([]SlotEntry, error)
	SaveSlot(ctx context.Context, diagramID string, slot int, name string, cfg DiagramConfiguration) (SlotEntry, error)
}

type slotDocument struct {
	DiagramID string      `json:"diagram_id"`
	Slots     []SlotEntry `json:"slots"`
}

// FileSlotStore keeps one JSON document per diagram id under dir.
// Saves read-modify-write the whole document, so untouched slots are
// preserved verbatim.
type FileSlotStore struct {
	dir string
}

func NewFileSlotStore(dir string) (*FileSlotStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create slot directory: %w", err)
	}
	return &FileSlotStore{dir: dir}, nil
}

func (s *FileSlotStore) path(diagramID string) string {
	// Diagram ids are opaque handles; keep them out of path syntax.
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '.', ' ':
			return '-'
		}
		return r
	}, diagramID)
	return filepath.Join(s.dir, safe+".json")
}

func (s *FileSlotStore) LoadSlots(ctx context.Context, diagramID string) ([]SlotEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := s.readDocument(diagramID)
	if err != nil {
		return nil, err
	}
	return doc.Slots, nil
}

func (s *FileSlotStore) SaveSlot(ctx context.Context, diagramID string, slot int, name string, cfg DiagramConfiguration) (SlotEntry, error) {
	if err := ctx.Err(); err != nil {
		return SlotEntry{}, err
	}
	if slot < 1 || slot > slotCount {
		return SlotEntry{}, fmt.Errorf("slot %d out of range 1-%d", slot, slotCount)
	}

	doc, err := s.readDocument(diagramID)
	if err != nil {
		return SlotEntry{}, err
	}
	entry := SlotEntry{
		Slot:    slot,
		Name:    name,
		SavedAt: time.Now().UTC(),
		Data:    cfg,
	}
	replaced := false
	for i := range doc.Slots {
		if doc.Slots[i].Slot == slot {
			doc.Slots[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Slots = append(doc.Slots, entry)
	}
	sort.Slice(doc.Slots, func(i, j int) bool { return doc.Slots[i].Slot < doc.Slots[j].Slot })
	doc.DiagramID = diagramID

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return SlotEntry{}, fmt.Errorf("encode slots: %w", err)
	}
	if err := os.WriteFile(s.path(diagramID), raw, 0644); err != nil {
		return SlotEntry{}, fmt.Errorf("write slots: %w", err)
	}
	return entry, nil
}

func (s *FileSlotStore) readDocument(diagramID string) (slotDocument, error) {
	var doc slotDocument
	raw, err := os.ReadFile(s.path(diagramID))
	if os.IsNotExist(err) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("read slots: %w", err)
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("decode slots: %w", err)
	}
	return doc, nil
}

// MemSlotStore is the in-memory store used by tests.
type MemSlotStore struct {
	mu    sync.RWMutex
	slots map[string]map[int]SlotEntry
}

func NewMemSlotStore() *MemSlotStore {
	return &MemSlotStore{slots: make(map[string]map[int]SlotEntry)}
}

func (s *MemSlotStore) LoadSlots(ctx context.Context, diagramID string) ([]SlotEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []SlotEntry
	for _, entry := range s.slots[diagramID] {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Slot < entries[j].Slot })
	return entries, nil
}

func (s *MemSlotStore) SaveSlot(ctx context.Context, diagramID string, slot int, name string, cfg DiagramConfiguration) (SlotEntry, error) {
	if err := ctx.Err(); err != nil {
		return SlotEntry{}, err
	}
	if slot < 1 || slot > slotCount {
		return SlotEntry{}, fmt.Errorf("slot %d out of range 1-%d", slot, slotCount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slots[diagramID] == nil {
		s.slots[diagramID] = make(map[int]SlotEntry)
	}
	entry := SlotEntry{Slot: slot, Name: name, SavedAt: time.Now().UTC(), Data: cfg}
	s.slots[diagramID][slot] = entry
	return entry, nil
}
