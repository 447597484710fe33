// Package kvstate maps a domain.Board onto the named keys of a
// ports.KeyValueStore, one JSON value per key.
package kvstate

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"tally/internal/domain"
	"tally/internal/ports"
)

// Keys under which the board is stored
const (
	KeyCounterLists     = "counterLists"
	KeyCurrentListIndex = "currentCounterListIndex"
	KeyCounterID        = "currentCounterId"
	KeyListID           = "currentCounterListId"

	// KeyLegacyCounters holds a bare counter array written by single-list versions
	KeyLegacyCounters = "counters"
)

// Store implements ports.StateStore on top of a KeyValueStore
type Store struct {
	kv ports.KeyValueStore
}

// Ensure Store implements StateStore
var _ ports.StateStore = (*Store)(nil)

// NewStore wraps kv
func NewStore(kv ports.KeyValueStore) *Store {
	return &Store{kv: kv}
}

// Load reads the board. It returns ports.ErrNoState when neither the
// multi-list nor the legacy single-list key is present.
func (s *Store) Load(ctx context.Context) (*domain.Board, error) {
	board := &domain.Board{}

	raw, ok, err := s.kv.Get(ctx, KeyCounterLists)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", KeyCounterLists, err)
	}
	if ok {
		if err := json.Unmarshal(raw, &board.Lists); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", KeyCounterLists, err)
		}
	} else {
		legacy, found, err := s.loadLegacy(ctx)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, ports.ErrNoState
		}
		board.Lists = []domain.CounterList{legacy}
	}

	if board.Current, err = s.loadInt(ctx, KeyCurrentListIndex); err != nil {
		return nil, err
	}
	if board.NextCounterID, err = s.loadInt(ctx, KeyCounterID); err != nil {
		return nil, err
	}
	if board.NextListID, err = s.loadInt(ctx, KeyListID); err != nil {
		return nil, err
	}

	board.Normalize()
	return board, nil
}

func (s *Store) loadLegacy(ctx context.Context) (domain.CounterList, bool, error) {
	raw, ok, err := s.kv.Get(ctx, KeyLegacyCounters)
	if err != nil {
		return domain.CounterList{}, false, fmt.Errorf("failed to read %s: %w", KeyLegacyCounters, err)
	}
	if !ok {
		return domain.CounterList{}, false, nil
	}

	var counters []domain.Counter
	if err := json.Unmarshal(raw, &counters); err != nil {
		return domain.CounterList{}, false, fmt.Errorf("failed to decode %s: %w", KeyLegacyCounters, err)
	}
	return domain.CounterList{
		ID:       domain.ListID(0),
		Name:     domain.DefaultListName,
		Counters: counters,
	}, true, nil
}

// loadInt reads a plain integer key; an absent key reads as zero
func (s *Store) loadInt(ctx context.Context, key string) (int, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return 0, nil
	}

	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return n, nil
}

// Save writes every key of the board in one SetMany call
func (s *Store) Save(ctx context.Context, board *domain.Board) error {
	lists, err := json.Marshal(board.Lists)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", KeyCounterLists, err)
	}

	return s.kv.SetMany(ctx, map[string][]byte{
		KeyCounterLists:     lists,
		KeyCurrentListIndex: []byte(strconv.Itoa(board.Current)),
		KeyCounterID:        []byte(strconv.Itoa(board.NextCounterID)),
		KeyListID:           []byte(strconv.Itoa(board.NextListID)),
	})
}
