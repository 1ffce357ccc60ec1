// Package wallet owns user identities and the credit balance of a signed-in session.
package wallet

import (
	"fmt"
	"strings"
	"sync"

	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"
)

// DailyBonus is the amount ClaimDailyBonus adds.
const DailyBonus = 500

// State of a Session
type State string

const (
	Anonymous     State = "anonymous"
	Authenticated State = "authenticated"
)

// Session is one user's sign-in state and wallet
type Session struct {
	mu   sync.Mutex
	dir  *Directory
	user *model.User
}

// NewSession creates an anonymous session backed by dir
func NewSession(dir *Directory) *Session {
	return &Session{dir: dir}
}

// Login signs in as name. A session that is already signed in saves its balance and switches identity.
func (s *Session) Login(name string) (model.User, error) {
	if strings.TrimSpace(name) == "" {
		return model.User{}, fmt.Errorf("wallet: %w - empty name", marketerrors.ErrInvalidIdentity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		s.dir.StoreBalance(s.user.Name, s.user.Credits)
	}
	u := s.dir.Resolve(name)
	s.user = &u
	return cloneUser(u), nil
}

// Logout saves the balance and returns the session to Anonymous
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	s.dir.StoreBalance(s.user.Name, s.user.Credits)
	s.user = nil
}

// Current returns the signed-in identity
func (s *Session) Current() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return model.User{}, false
	}
	return cloneUser(*s.user), true
}

// State reports whether an identity is signed in
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return Anonymous
	}
	return Authenticated
}

// UpdateCredits adds delta to the balance. It does nothing when anonymous.
func (s *Session) UpdateCredits(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	s.user.Credits += delta
}

// ClaimDailyBonus adds DailyBonus and returns the new balance
func (s *Session) ClaimDailyBonus() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return 0, fmt.Errorf("wallet: %w - claim bonus", marketerrors.ErrNotAuthenticated)
	}
	s.user.Credits += DailyBonus
	return s.user.Credits, nil
}

// Balance is zero when anonymous
func (s *Session) Balance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return 0
	}
	return s.user.Credits
}

// Debit subtracts amount if the balance covers it
func (s *Session) Debit(amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return fmt.Errorf("wallet: %w - debit", marketerrors.ErrNotAuthenticated)
	}
	if amount > s.user.Credits {
		return fmt.Errorf("wallet: %w - have %d, need %d", marketerrors.ErrInsufficientCredits, s.user.Credits, amount)
	}
	s.user.Credits -= amount
	return nil
}

// Credit refunds amount. It does nothing when anonymous.
func (s *Session) Credit(amount int) {
	s.UpdateCredits(amount)
}
