package state

import "github.com/atomicstack/header-menu/internal/session"

// SessionStore keeps the latest session snapshot and the last load error.
type SessionStore interface {
	Snapshot() session.State
	SetSnapshot(session.State)
	Loaded() bool
	Err() error
	SetErr(error)
}

type sessionStore struct {
	snapshot session.State
	loaded   bool
	err      error
}

func NewSessionStore() SessionStore {
	return &sessionStore{}
}

// NewSessionStoreWith seeds the store with an initial snapshot.
func NewSessionStoreWith(st session.State) SessionStore {
	return &sessionStore{snapshot: st, loaded: true}
}

func (s *sessionStore) Snapshot() session.State {
	return s.snapshot
}

func (s *sessionStore) SetSnapshot(st session.State) {
	s.snapshot = st
	s.loaded = true
	s.err = nil
}

func (s *sessionStore) Loaded() bool {
	return s.loaded
}

func (s *sessionStore) Err() error {
	return s.err
}

func (s *sessionStore) SetErr(err error) {
	s.err = err
}
