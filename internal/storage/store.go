// Package storage persists the auth token and cached user between runs.
package storage

import "github.com/osse101/IdleGarden_Go/internal/domain"

// SchemaVersion is written into every session file. Files with another
// version read as empty so a stale layout never leaks into the client.
const SchemaVersion = 1

// Store is the local session cache
type Store interface {
	SaveToken(token string) error
	// Token returns domain.ErrTokenNotFound when no token is stored
	Token() (string, error)
	RemoveToken() error

	SaveUser(user domain.User) error
	// User returns nil when no user is cached
	User() (*domain.User, error)
	RemoveUser() error

	ClearAll() error
}

type document struct {
	SchemaVersion int          `yaml:"schema_version"`
	Token         string       `yaml:"token,omitempty"`
	User          *domain.User `yaml:"user,omitempty"`
}
