package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"bizindustry/cmd/internal/domain/entity"
	"bizindustry/cmd/internal/utils/uid"

	"github.com/labstack/gommon/log"
)

// HandoffStore is a per-session key/value store for text blobs.
type HandoffStore interface {
	Put(ctx context.Context, sessionID, key, value string) error
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
}

// HandoffService passes a search result set from the home page to the
// results page of the same browser session without querying again.
type HandoffService struct {
	Store HandoffStore
}

func NewHandoffService(store HandoffStore) *HandoffService {
	return &HandoffService{Store: store}
}

// Save replaces both handoff entries of the session. The two writes are
// independent, the last search to write wins. Every saved search gets a new
// revision, stored with its query.
func (h *HandoffService) Save(ctx context.Context, sessionID string, results []*entity.Company, query *entity.SearchQuery) error {
	if results == nil {
		results = []*entity.Company{}
	}

	stored := entity.SearchQuery{}
	if query != nil {
		stored = *query
	}
	stored.Revision = uid.Generate()

	rawResults, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode search results: %w", err)
	}
	rawQuery, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("failed to encode search query: %w", err)
	}

	if err = h.Store.Put(ctx, sessionID, entity.HandoffKeyResults, string(rawResults)); err != nil {
		return fmt.Errorf("failed to store search results: %w", err)
	}
	if err = h.Store.Put(ctx, sessionID, entity.HandoffKeyQuery, string(rawQuery)); err != nil {
		return fmt.Errorf("failed to store search query: %w", err)
	}
	log.Debugf("stored search %s with %d companies for session %s", uid.Format(stored.Revision), len(results), sessionID)
	return nil
}

// Load returns the stored handoff. ok is false when either entry is
// missing or unreadable; that is not an error, the caller falls back
// to a fresh listing. err is only set when the store itself fails.
func (h *HandoffService) Load(ctx context.Context, sessionID string) ([]*entity.Company, *entity.SearchQuery, bool, error) {
	rawResults, ok, err := h.Store.Get(ctx, sessionID, entity.HandoffKeyResults)
	if err != nil || !ok {
		return nil, nil, false, err
	}

	rawQuery, ok, err := h.Store.Get(ctx, sessionID, entity.HandoffKeyQuery)
	if err != nil || !ok {
		return nil, nil, false, err
	}

	var results []*entity.Company
	if err = json.Unmarshal([]byte(rawResults), &results); err != nil || results == nil {
		log.Warnf("discarding unreadable search results of session %s: %v", sessionID, err)
		return nil, nil, false, nil
	}
	results = slices.DeleteFunc(results, func(c *entity.Company) bool { return c == nil })

	var query entity.SearchQuery
	if err = json.Unmarshal([]byte(rawQuery), &query); err != nil {
		log.Warnf("discarding unreadable search query of session %s: %v", sessionID, err)
		return nil, nil, false, nil
	}
	return results, &query, true, nil
}
