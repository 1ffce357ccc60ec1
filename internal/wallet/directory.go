package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	model "meme-market/internal/models"
	"meme-market/utils"
)

// StartingCredits is the balance of a newly synthesised identity.
const StartingCredits = 1000

// Directory is the set of known identities, keyed by case-insensitive name
type Directory struct {
	mu    sync.RWMutex
	users map[string]model.User // key: lower-cased name
	now   func() time.Time
}

// NewDirectory creates a directory holding the seeded identities
func NewDirectory() *Directory {
	d := &Directory{
		users: make(map[string]model.User),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, u := range seedIdentities() {
		d.users[key(u.Name)] = u
	}
	return d
}

func seedIdentities() []model.User {
	joined := time.Date(2077, 1, 1, 0, 0, 0, 0, time.UTC)
	return []model.User{
		{UserID: "user-cyberninja", Name: "CyberNinja", Credits: 2500, Avatar: "https://api.dicebear.com/7.x/bottts/svg?seed=CyberNinja", JoinedAt: joined, OwnedMemeIDs: []string{}},
		{UserID: "user-neonhacker", Name: "NeonHacker", Credits: 1800, Avatar: "https://api.dicebear.com/7.x/bottts/svg?seed=NeonHacker", JoinedAt: joined, OwnedMemeIDs: []string{}},
		{UserID: "user-glitchqueen", Name: "GlitchQueen", Credits: 3200, Avatar: "https://api.dicebear.com/7.x/bottts/svg?seed=GlitchQueen", JoinedAt: joined, OwnedMemeIDs: []string{}},
	}
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup finds an identity by name, ignoring case
func (d *Directory) Lookup(name string) (model.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[key(name)]
	return cloneUser(u), ok
}

// Resolve returns the identity registered under name, creating it with StartingCredits when unknown.
func (d *Directory) Resolve(name string) model.User {
	name = strings.TrimSpace(name)

	d.mu.Lock()
	defer d.mu.Unlock()

	if u, ok := d.users[key(name)]; ok {
		return cloneUser(u)
	}

	u := model.User{
		UserID:       utils.GenerateID(),
		Name:         name,
		Credits:      StartingCredits,
		Avatar:       "https://api.dicebear.com/7.x/bottts/svg?seed=" + name,
		JoinedAt:     d.now(),
		OwnedMemeIDs: []string{},
	}
	d.users[key(name)] = u
	utils.Info("new identity registered", map[string]any{"user_id": u.UserID, "name": name})
	return cloneUser(u)
}

// StoreBalance records the balance of a known identity. Unknown names are ignored.
func (d *Directory) StoreBalance(name string, credits int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	u, ok := d.users[key(name)]
	if !ok {
		return
	}
	u.Credits = credits
	d.users[key(name)] = u
}

// Users lists every identity ordered by name
func (d *Directory) Users() []model.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.User, 0, len(d.users))
	for _, u := range d.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return key(out[i].Name) < key(out[j].Name) })
	return out
}

type directoryFile struct {
	Users []model.User `json:"users"`
}

// Load merges identities from a JSON file. A missing file leaves the directory unchanged.
func (d *Directory) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("wallet: open identity file: %w", err)
	}
	defer f.Close()

	var df directoryFile
	if err := json.NewDecoder(f).Decode(&df); err != nil {
		return fmt.Errorf("wallet: decode identity file: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range df.Users {
		if key(u.Name) == "" {
			continue
		}
		d.users[key(u.Name)] = u
	}
	return nil
}

// Save writes every identity to a JSON file
func (d *Directory) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wallet: create identity file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(directoryFile{Users: d.Users()}); err != nil {
		return fmt.Errorf("wallet: encode identity file: %w", err)
	}
	return nil
}

func cloneUser(u model.User) model.User {
	u.OwnedMemeIDs = append([]string{}, u.OwnedMemeIDs...)
	return u
}
