package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/substratefi/ledgerterm/internal/ledger"
)

// FilterParticipants narrows the participant list against a query. Fuzzy
// matching on names runs first; when it yields nothing, a case-insensitive
// substring match over name and id is the fallback. Original list order is
// preserved either way.
func FilterParticipants(participants []ledger.Participant, query string) []ledger.Participant {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]ledger.Participant(nil), participants...)
	}
	names := make([]string, len(participants))
	for i, p := range participants {
		names[i] = p.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) > 0 {
		matched := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matched[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]ledger.Participant, 0, len(matched))
		for i, p := range participants {
			if _, ok := matched[i]; ok {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]ledger.Participant, 0, len(participants))
	for _, p := range participants {
		if strings.Contains(strings.ToLower(p.Name), lower) || strings.Contains(strings.ToLower(p.ID), lower) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
