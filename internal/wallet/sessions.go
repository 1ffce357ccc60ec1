package wallet

import (
	"sync"

	model "meme-market/internal/models"
	"meme-market/utils"
)

// Sessions maps opaque tokens to signed-in sessions. All tokens of one identity
// share a single Session, so concurrent logins spend from the same balance.
type Sessions struct {
	mu      sync.Mutex
	dir     *Directory
	byToken map[string]*Session
	byName  map[string]*Session // key: lower-cased name
	refs    map[*Session]int
}

// NewSessions creates an empty registry over dir
func NewSessions(dir *Directory) *Sessions {
	return &Sessions{
		dir:     dir,
		byToken: make(map[string]*Session),
		byName:  make(map[string]*Session),
		refs:    make(map[*Session]int),
	}
}

// Start signs name in and returns a new token for its session
func (r *Sessions) Start(name string) (string, model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byName[key(name)]
	if !ok {
		s = NewSession(r.dir)
		if _, err := s.Login(name); err != nil {
			return "", model.User{}, err
		}
		r.byName[key(name)] = s
	}
	u, _ := s.Current()

	token := utils.GenerateID()
	r.byToken[token] = s
	r.refs[s]++

	utils.Info("session started", map[string]any{"user_id": u.UserID})
	return token, u, nil
}

// Get returns the session for token
func (r *Sessions) Get(token string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byToken[token]
	return s, ok
}

// End forgets token. The session is logged out once its last token ends.
// Unknown tokens report false.
func (r *Sessions) End(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byToken[token]
	if !ok {
		return false
	}
	delete(r.byToken, token)
	r.refs[s]--
	if r.refs[s] > 0 {
		return true
	}

	delete(r.refs, s)
	if u, ok := s.Current(); ok {
		delete(r.byName, key(u.Name))
	}
	s.Logout()
	return true
}

// Close logs every session out so balances reach the directory
func (r *Sessions) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.byName {
		s.Logout()
	}
	r.byToken = make(map[string]*Session)
	r.byName = make(map[string]*Session)
	r.refs = make(map[*Session]int)
}

// Directory returns the backing identity directory
func (r *Sessions) Directory() *Directory {
	return r.dir
}
