package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/Dosada05/scouting-system/editor"
)

const DraftsBucket = "drafts"

// DraftStore keeps the unsaved editor state per tournament.
type DraftStore interface {
	Get(tournamentID string) (editor.Drafts, bool, error)
	Put(tournamentID string, drafts editor.Drafts) error
	Delete(tournamentID string) error
	Close() error
}

type BoltDraftStore struct {
	db *bbolt.DB
}

func NewBoltDraftStore(dbPath string, logger *slog.Logger) (*BoltDraftStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create drafts directory %s: %w", dir, err)
	}

	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open drafts db at %s: %w", dbPath, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(DraftsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create drafts bucket: %w", err)
	}

	logger.Info("draft store opened", slog.String("path", dbPath))
	return &BoltDraftStore{db: db}, nil
}

func (s *BoltDraftStore) Get(tournamentID string) (editor.Drafts, bool, error) {
	var drafts editor.Drafts
	var found bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(DraftsBucket)).Get([]byte(tournamentID))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &drafts)
	})
	if err != nil {
		return editor.Drafts{}, false, fmt.Errorf("failed to read drafts of %s: %w", tournamentID, err)
	}
	return drafts, found, nil
}

func (s *BoltDraftStore) Put(tournamentID string, drafts editor.Drafts) error {
	data, err := json.Marshal(drafts)
	if err != nil {
		return fmt.Errorf("failed to marshal drafts: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(DraftsBucket)).Put([]byte(tournamentID), data)
	})
}

func (s *BoltDraftStore) Delete(tournamentID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(DraftsBucket)).Delete([]byte(tournamentID))
	})
}

func (s *BoltDraftStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
