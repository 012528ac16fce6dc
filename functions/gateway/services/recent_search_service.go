package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/ayushijadhav2006/smile-share/functions/gateway/helpers"
	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

// RecentSearchService keeps a per-user list of past search terms: most
// recent first, unique, capped at RECENT_SEARCH_LIMIT, re-persisted in full
// on every mutation.
type RecentSearchService struct {
	kv internal_types.KVStoreAPI
}

func NewRecentSearchService(kv internal_types.KVStoreAPI) *RecentSearchService {
	return &RecentSearchService{kv: kv}
}

func recentSearchKey(userId string) string {
	return helpers.RECENT_SEARCH_KEY_PREFIX + userId
}

// Load returns the persisted list, or an empty list when nothing is stored
// or the payload is unreadable. It never fails: a corrupt payload is
// logged and treated as empty.
func (s *RecentSearchService) Load(ctx context.Context, userId string) []string {
	payload, found, err := s.kv.GetString(ctx, recentSearchKey(userId))
	if err != nil {
		log.Printf("failed to read recent searches for %s: %v", userId, err)
		return []string{}
	}
	if !found {
		return []string{}
	}

	var searches []string
	if err := json.Unmarshal([]byte(payload), &searches); err != nil {
		log.Printf("corrupt recent searches payload for %s, resetting: %v", userId, err)
		return []string{}
	}

	return truncateSearches(searches)
}

// Record prepends a new term and persists the whole list. Empty terms and
// terms already present (exact, case-sensitive) are a no-op; an existing
// entry keeps its position rather than moving to the front.
func (s *RecentSearchService) Record(ctx context.Context, userId, term string) ([]string, error) {
	searches := s.Load(ctx, userId)

	if strings.TrimSpace(term) == "" {
		return searches, nil
	}
	for _, existing := range searches {
		if existing == term {
			return searches, nil
		}
	}

	searches = truncateSearches(append([]string{term}, searches...))

	payload, err := json.Marshal(searches)
	if err != nil {
		return nil, err
	}
	if err := s.kv.SetString(ctx, recentSearchKey(userId), string(payload)); err != nil {
		return nil, err
	}

	return searches, nil
}

// Clear empties the list and removes the persisted payload.
func (s *RecentSearchService) Clear(ctx context.Context, userId string) error {
	return s.kv.Remove(ctx, recentSearchKey(userId))
}

func truncateSearches(searches []string) []string {
	if len(searches) > helpers.RECENT_SEARCH_LIMIT {
		return searches[:helpers.RECENT_SEARCH_LIMIT]
	}
	return searches
}
