package drafts

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"threads-cli/internal/fileutil"
	"threads-cli/internal/logging"
	"threads-cli/internal/services"
)

// Publisher posts text to the remote service and returns the new post's ID.
type Publisher interface {
	CreatePost(ctx context.Context, text string) (string, error)
}

// Store reads and writes drafts in a single JSON file.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a store backed by path, which should already have been
// through ResolvePath.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logging.NewComponentLogger(logger, "drafts"),
	}
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// List returns all drafts in creation order.
func (s *Store) List() ([]Draft, error) {
	return s.load()
}

// Create appends a draft with the next free ID and persists the store.
func (s *Store) Create(text string) (Draft, error) {
	if strings.TrimSpace(text) == "" {
		return Draft{}, services.Wrap(services.ErrValidation, "drafts", "create", "draft text is empty", nil)
	}

	drafts, err := s.load()
	if err != nil {
		return Draft{}, err
	}

	draft := Draft{ID: nextID(drafts), Text: text}
	drafts = append(drafts, draft)
	if err := s.save(drafts); err != nil {
		return Draft{}, err
	}

	s.logger.Info("draft created",
		logging.Int(logging.FieldDraftID, draft.ID),
		logging.Int("text_length", len([]rune(text))),
		logging.Int("draft_count", len(drafts)))
	return draft, nil
}

// Send publishes the draft with the given ID and removes it from the store.
// Nothing is written, and pub is not called, when the draft does not exist. A
// failed publish leaves the store untouched.
func (s *Store) Send(ctx context.Context, id int, pub Publisher) (Draft, string, error) {
	logger := logging.WithContext(services.WithDraftID(ctx, id), s.logger)

	drafts, err := s.load()
	if err != nil {
		return Draft{}, "", err
	}

	idx := indexOf(drafts, id)
	if idx < 0 {
		logger.Debug("draft not found", logging.Int("draft_count", len(drafts)))
		return Draft{}, "", fmt.Errorf("send draft %d: %w", id, ErrDraftNotFound)
	}
	draft := drafts[idx]

	postID, err := pub.CreatePost(ctx, draft.Text)
	if err != nil {
		logger.Warn("publish failed; draft kept", logging.Error(err))
		return Draft{}, "", fmt.Errorf("send draft %d: %w", id, err)
	}

	remaining := make([]Draft, 0, len(drafts)-1)
	remaining = append(remaining, drafts[:idx]...)
	remaining = append(remaining, drafts[idx+1:]...)
	if err := s.save(remaining); err != nil {
		// The post is live but the draft is still on disk; say so.
		return Draft{}, postID, fmt.Errorf("draft %d published as %s but could not be removed: %w", id, postID, err)
	}

	logger.Info("draft sent",
		logging.String("post_id", postID),
		logging.Int("draft_count", len(remaining)))
	return draft, postID, nil
}

func (s *Store) load() ([]Draft, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read drafts file %s: %w", s.path, err)
	}

	drafts, err := decodeDrafts(data)
	if err != nil {
		return nil, services.Wrap(services.ErrDataFormat, "drafts", "parse", s.path, err)
	}

	if dups := duplicateIDs(drafts); len(dups) > 0 {
		s.logger.Warn("drafts file contains duplicate ids",
			logging.String(logging.FieldEventType, "drafts_duplicate_ids"),
			logging.Any("duplicate_ids", dups),
			logging.String(logging.FieldErrorHint, "send-draft acts on the first match; edit the file to renumber"))
	}

	s.logger.Debug("loaded drafts",
		logging.Int("draft_count", len(drafts)),
		logging.String("path", s.path))
	return drafts, nil
}

// save writes the store atomically via a temp file in the same directory.
func (s *Store) save(drafts []Draft) error {
	data, err := encodeDrafts(drafts)
	if err != nil {
		return fmt.Errorf("marshal drafts: %w", err)
	}

	if err := fileutil.WriteFileAtomic(s.path, data, fileutil.FileMode(s.path, 0o644)); err != nil {
		return fmt.Errorf("save drafts file %s: %w", s.path, err)
	}
	return nil
}
