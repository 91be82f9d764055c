package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dkuleshov/emgtrack/internal/common"
	"github.com/dkuleshov/emgtrack/internal/filex"
	"github.com/dkuleshov/emgtrack/internal/models"
)

const (
	usersFileName    = "users.json"
	readingsFileName = "data.json"
)

// FileStore keeps each collection as an indented JSON document inside a
// directory: users.json holds {"users":[...]}, data.json holds {"data":[...]}.
type FileStore struct {
	dir  string
	opts options
}

func NewFileStore(dir string, opts ...Option) *FileStore {
	return &FileStore{dir: dir, opts: newOptions(opts)}
}

func (s *FileStore) usersPath() string    { return filepath.Join(s.dir, usersFileName) }
func (s *FileStore) readingsPath() string { return filepath.Join(s.dir, readingsFileName) }

// Init ensures the directory and both documents exist. Existing documents are
// left untouched, so calling Init on a populated store loses nothing.
func (s *FileStore) Init(ctx context.Context) error {
	if err := filex.EnsureDir(s.dir); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageWrite, err)
	}
	if !filex.Exists(s.usersPath()) {
		if err := s.writeDocument(s.usersPath(), usersDocument{Users: []models.User{}}); err != nil {
			return err
		}
	}
	if !filex.Exists(s.readingsPath()) {
		if err := s.writeDocument(s.readingsPath(), readingsDocument{Data: []models.Reading{}}); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileStore) ReadUsers(ctx context.Context) ([]models.User, error) {
	var doc usersDocument
	if err := s.readDocument(ctx, s.usersPath(), &doc); err != nil {
		return nil, err
	}
	return doc.Users, nil
}

func (s *FileStore) WriteUsers(ctx context.Context, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	return s.writeDocument(s.usersPath(), usersDocument{Users: users})
}

func (s *FileStore) ReadReadings(ctx context.Context) ([]models.Reading, error) {
	var doc readingsDocument
	if err := s.readDocument(ctx, s.readingsPath(), &doc); err != nil {
		return nil, err
	}
	return doc.Data, nil
}

func (s *FileStore) WriteReadings(ctx context.Context, readings []models.Reading) error {
	if readings == nil {
		readings = []models.Reading{}
	}
	return s.writeDocument(s.readingsPath(), readingsDocument{Data: readings})
}

// readDocument parses the document at path into out. With lenient reads
// (the default) any access or parse failure leaves out untouched and returns
// nil after logging, so the collection reads as empty.
func (s *FileStore) readDocument(ctx context.Context, path string, out any) error {
	b, err := os.ReadFile(path)
	if err == nil {
		err = json.Unmarshal(b, out)
	}
	if err == nil {
		return nil
	}
	if s.opts.strictReads {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	s.opts.log.Warn(ctx, "document unreadable, treating collection as empty",
		"path", path, "error", err)
	return nil
}

func (s *FileStore) writeDocument(path string, doc any) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", common.ErrStorageWrite, filepath.Base(path), err)
	}
	if err := os.WriteFile(path, b, 0o660); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageWrite, err)
	}
	return nil
}
