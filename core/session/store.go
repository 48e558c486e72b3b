package session

import (
	"context"
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/seekhobharat/client/core"
	"github.com/seekhobharat/client/services/rest"
	localstore "github.com/seekhobharat/client/storage/local"
)

type (
	// Store owns the current Session: an in-memory mirror backed by durable
	// storage, so a fresh process picks up where the last one left off.
	Store struct {
		api        *rest.Client
		storage    localstore.Storage
		log        core.Logger
		validate   *validator.Validate
		translator ut.Translator

		mu     sync.RWMutex
		sess   Session
		loaded bool
	}

	loginData struct {
		Role Role `json:"role"`
	}
)

func NewStore(
	api *rest.Client,
	storage localstore.Storage,
	log core.Logger,
	validate *validator.Validate,
	translator ut.Translator,
) *Store {
	return &Store{
		api:        api,
		storage:    storage,
		log:        log,
		validate:   validate,
		translator: translator,
	}
}

// Login authenticates against the backend. On success the token and role are
// persisted and mirrored in memory; on failure any prior session is left
// untouched and the returned error is displayable as-is.
func (s *Store) Login(ctx context.Context, creds Credentials) (Session, error) {
	if err := creds.Validate(s.validate, s.translator); err != nil {
		return Session{}, err
	}

	env, err := s.api.Do(ctx, "POST", "/auth/login", nil, creds)
	if err != nil {
		return Session{}, err
	}

	var data loginData
	if env.Data != nil {
		if err := env.DecodeData(&data); err != nil {
			return Session{}, err
		}
	}

	sess := Session{Token: env.Token, Role: data.Role}
	if !sess.Present() {
		return Session{}, ErrMalformedToken
	}

	if err := s.storage.Set(localstore.KeyToken, sess.Token); err != nil {
		s.log.Warn("persisting token failed", err)
	}
	if err := s.storage.Set(localstore.KeyRole, string(sess.Role)); err != nil {
		s.log.Warn("persisting role failed", err)
	}

	s.mu.Lock()
	s.sess = sess
	s.loaded = true
	s.mu.Unlock()
	s.api.SetToken(sess.Token)

	s.log.Info("logged in", map[string]interface{}{"role": string(sess.Role)})
	return sess, nil
}

// Register creates a new account. It does not log the account in.
func (s *Store) Register(ctx context.Context, acct NewAccount) error {
	if err := acct.Validate(s.validate, s.translator); err != nil {
		return err
	}
	return s.api.Post(ctx, "/auth/register", acct, nil)
}

// Logout clears durable storage and the in-memory mirror unconditionally.
// It is idempotent and never touches the network.
func (s *Store) Logout() {
	s.ForceClear()
	s.log.Info("logged out")
}

// ForceClear destroys the session without ceremony. The route guard calls
// this when a stored token turns out to be garbage.
func (s *Store) ForceClear() {
	_ = s.storage.Delete(localstore.KeyToken)
	_ = s.storage.Delete(localstore.KeyRole)
	_ = s.storage.Delete(localstore.KeyEnrolledCourses)

	s.mu.Lock()
	s.sess = Session{}
	s.loaded = true
	s.mu.Unlock()
	s.api.SetToken("")
}

// Current returns the session mirror, falling back to durable storage once
// to cover a fresh process.
func (s *Store) Current() Session {
	s.mu.RLock()
	sess, loaded := s.sess, s.loaded
	s.mu.RUnlock()
	if loaded {
		return sess
	}

	token, _ := s.storage.Get(localstore.KeyToken)
	role, _ := s.storage.Get(localstore.KeyRole)
	sess = Session{Token: token, Role: Role(role)}

	s.mu.Lock()
	s.sess = sess
	s.loaded = true
	s.mu.Unlock()
	if sess.Present() {
		s.api.SetToken(sess.Token)
	}
	return sess
}
