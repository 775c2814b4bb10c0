package drafts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"threads-cli/internal/services"
)

// ErrDraftNotFound is returned by Send when no draft carries the requested ID.
// It also matches services.ErrNotFound.
var ErrDraftNotFound = fmt.Errorf("draft %w", services.ErrNotFound)

// Draft is a locally stored, unsent post.
type Draft struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// nextID returns one more than the highest ID in drafts, so removing a draft
// from the middle never leads to a duplicate.
func nextID(drafts []Draft) int {
	highest := 0
	for _, d := range drafts {
		if d.ID > highest {
			highest = d.ID
		}
	}
	return highest + 1
}

func indexOf(drafts []Draft, id int) int {
	for i, d := range drafts {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// decodeDrafts parses store content. Empty content and the legacy `{}`
// placeholder both decode to an empty store.
func decodeDrafts(data []byte) ([]Draft, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []Draft{}, nil
	}

	if trimmed[0] == '{' {
		var legacy map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return nil, err
		}
		if len(legacy) != 0 {
			return nil, errors.New("expected a JSON array of drafts, found an object")
		}
		return []Draft{}, nil
	}

	var stored []storedDraft
	if err := json.Unmarshal(trimmed, &stored); err != nil {
		return nil, err
	}
	// `null` leaves stored nil and is treated like an empty store.
	drafts := make([]Draft, 0, len(stored))
	for i, sd := range stored {
		switch {
		case sd.ID == nil || sd.Text == nil:
			return nil, fmt.Errorf("draft at index %d: missing \"id\" or \"text\"", i)
		case *sd.ID <= 0:
			return nil, fmt.Errorf("draft at index %d: id must be positive, got %d", i, *sd.ID)
		}
		drafts = append(drafts, Draft{ID: *sd.ID, Text: *sd.Text})
	}
	return drafts, nil
}

// storedDraft is the on-disk record. Pointer fields tell a missing key apart
// from a zero value.
type storedDraft struct {
	ID   *int    `json:"id"`
	Text *string `json:"text"`
}

// duplicateIDs reports IDs that occur more than once. Files written by older
// releases, which derived IDs from the list length, can contain them.
func duplicateIDs(drafts []Draft) []int {
	seen := make(map[int]int, len(drafts))
	var dups []int
	for _, d := range drafts {
		seen[d.ID]++
		if seen[d.ID] == 2 {
			dups = append(dups, d.ID)
		}
	}
	return dups
}

func encodeDrafts(drafts []Draft) ([]byte, error) {
	if drafts == nil {
		drafts = []Draft{}
	}
	data, err := json.MarshalIndent(drafts, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
