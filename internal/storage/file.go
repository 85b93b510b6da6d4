package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/IdleGarden_Go/internal/domain"
)

// FileStore keeps the session in a single YAML file
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path. The file is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) SaveToken(token string) error {
	return s.update(func(doc *document) { doc.Token = token })
}

func (s *FileStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return "", err
	}
	if doc.Token == "" {
		return "", domain.ErrTokenNotFound
	}
	return doc.Token, nil
}

func (s *FileStore) RemoveToken() error {
	return s.update(func(doc *document) { doc.Token = "" })
}

func (s *FileStore) SaveUser(user domain.User) error {
	return s.update(func(doc *document) { doc.User = &user })
}

func (s *FileStore) User() (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.User, nil
}

func (s *FileStore) RemoveUser() error {
	return s.update(func(doc *document) { doc.User = nil })
}

func (s *FileStore) ClearAll() error {
	return s.update(func(doc *document) { *doc = document{} })
}

func (s *FileStore) update(mutate func(*document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	mutate(&doc)
	doc.SchemaVersion = SchemaVersion

	if err := atomicWriteYAML(s.path, doc); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// read returns an empty document when the file is missing or has another schema version
func (s *FileStore) read() (document, error) {
	content, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return document{}, nil
	}
	if err != nil {
		return document{}, fmt.Errorf("failed to read session: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return document{}, fmt.Errorf("failed to parse session %s: %w", s.path, err)
	}
	if doc.SchemaVersion != SchemaVersion {
		slog.Warn(LogMsgSchemaMismatch, "path", s.path, "found", doc.SchemaVersion, "expected", SchemaVersion)
		return document{}, nil
	}
	return doc, nil
}
