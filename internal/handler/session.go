package handler

import (
	"encoding/json"
	"net/http"

	"checkcheck/internal/cart"
	"checkcheck/internal/model"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"
)

const (
	cartSessionName  = "checkcheck-cart"
	userSessionName  = "checkcheck-user"
	adminSessionName = "checkcheck-admin"

	cartKey  = "cart"
	userKey  = "user"
	adminKey = "authenticated"

	// Cart and account cookies survive browser restarts, like the
	// original localStorage state.
	persistentMaxAge = 30 * 24 * 60 * 60
)

// Sessions wraps the cookie store holding cart, account and admin state.
// Values are stored as JSON strings to keep the cookies inspectable and
// to coerce malformed payloads defensively on load.
type Sessions struct {
	store  *sessions.CookieStore
	logger zerolog.Logger
}

// NewSessions creates the session store from the configured secret.
func NewSessions(secret string, logger zerolog.Logger) *Sessions {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   persistentMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Sessions{
		store:  store,
		logger: logger.With().Str("component", "sessions").Logger(),
	}
}

// Cart rehydrates the caller's cart. A missing or corrupt payload yields
// an empty cart; storage failures are logged and ignored.
func (s *Sessions) Cart(r *http.Request) *cart.Cart {
	session, err := s.store.Get(r, cartSessionName)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load cart session, starting empty")
		return cart.New()
	}

	raw, ok := session.Values[cartKey].(string)
	if !ok || raw == "" {
		return cart.New()
	}

	c, err := cart.Decode(raw)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to decode stored cart, starting empty")
	}
	return c
}

// SaveCart mirrors the cart back to the session cookie.
func (s *Sessions) SaveCart(w http.ResponseWriter, r *http.Request, c *cart.Cart) {
	session, _ := s.store.Get(r, cartSessionName)

	raw, err := cart.Encode(c)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode cart")
		return
	}
	session.Values[cartKey] = raw

	if err := session.Save(r, w); err != nil {
		s.logger.Warn().Err(err).Msg("failed to save cart session")
	}
}

// ClearCart empties the stored cart.
func (s *Sessions) ClearCart(w http.ResponseWriter, r *http.Request) {
	s.SaveCart(w, r, cart.New())
}

// User returns the logged-in account, or nil.
func (s *Sessions) User(r *http.Request) *model.User {
	session, err := s.store.Get(r, userSessionName)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load user session")
		return nil
	}

	raw, ok := session.Values[userKey].(string)
	if !ok || raw == "" {
		return nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn().Err(err).Msg("failed to decode stored user")
		return nil
	}
	return &user
}

// SetUser records the logged-in account.
func (s *Sessions) SetUser(w http.ResponseWriter, r *http.Request, user *model.User) {
	session, _ := s.store.Get(r, userSessionName)

	raw, err := json.Marshal(user)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode user")
		return
	}
	session.Values[userKey] = string(raw)

	if err := session.Save(r, w); err != nil {
		s.logger.Warn().Err(err).Msg("failed to save user session")
	}
}

// ClearUser logs the account out.
func (s *Sessions) ClearUser(w http.ResponseWriter, r *http.Request) {
	session, _ := s.store.Get(r, userSessionName)
	delete(session.Values, userKey)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear user session")
	}
}

// IsAdmin reports whether the caller has passed the admin gate.
func (s *Sessions) IsAdmin(r *http.Request) bool {
	session, err := s.store.Get(r, adminSessionName)
	if err != nil {
		return false
	}
	ok, _ := session.Values[adminKey].(bool)
	return ok
}

// SetAdmin marks the caller as having passed the admin gate for the
// lifetime of the browser session.
func (s *Sessions) SetAdmin(w http.ResponseWriter, r *http.Request) {
	session, _ := s.store.Get(r, adminSessionName)
	session.Values[adminKey] = true
	session.Options.MaxAge = 0 // browser-session cookie
	if err := session.Save(r, w); err != nil {
		s.logger.Warn().Err(err).Msg("failed to save admin session")
	}
}

// ClearAdmin ends the admin session.
func (s *Sessions) ClearAdmin(w http.ResponseWriter, r *http.Request) {
	session, _ := s.store.Get(r, adminSessionName)
	delete(session.Values, adminKey)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear admin session")
	}
}
