// Package otp holds the one-time codes issued for password resets. The
// registry lives in process memory; one active code per phone, overwritten
// by each new request.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"checkcheck/internal/model"
)

const (
	// CodeTTL is how long an issued code stays valid.
	CodeTTL = 10 * time.Minute
	// VerifiedTTL is the extra window granted after a successful
	// verification to complete the password reset.
	VerifiedTTL = 5 * time.Minute
)

type record struct {
	code      string
	expiresAt time.Time
}

// Registry tracks issued and verified codes keyed by phone number.
type Registry struct {
	mu       sync.Mutex
	codes    map[string]record
	verified map[string]time.Time

	now func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		codes:    make(map[string]record),
		verified: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Issue generates a fresh 6-digit code for phone, replacing any earlier
// code, and returns it.
func (r *Registry) Issue(phone string) string {
	code := GenerateCode()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[phone] = record{code: code, expiresAt: r.now().Add(CodeTTL)}
	return code
}

// Check validates code against the active record for phone. It does not
// consume the record; the code stays usable until the reset completes or
// a new code is requested.
func (r *Registry) Check(phone, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.codes[phone]
	if !ok {
		return model.ErrNoActiveCode
	}
	if r.now().After(rec.expiresAt) {
		return model.ErrCodeHasExpired
	}
	if rec.code != code {
		return model.ErrCodeDoesNotMatch
	}
	return nil
}

// MarkVerified records that phone has proven knowledge of its code,
// opening the window for the final password-set step.
func (r *Registry) MarkVerified(phone string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.verified[phone] = r.now().Add(VerifiedTTL)
}

// Consume deletes both the code and the verified mark for phone. Called
// once a password reset completes.
func (r *Registry) Consume(phone string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.codes, phone)
	delete(r.verified, phone)
}

// GenerateCode returns a uniformly random 6-digit code (100000-999999).
func GenerateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken.
		panic(fmt.Sprintf("otp: generate code: %v", err))
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
