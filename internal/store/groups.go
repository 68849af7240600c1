package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"zigbeectl/internal/models"
)

// ErrGroupExists is returned when a group with the same name or derived ID
// is already persisted.
var ErrGroupExists = errors.New("group already exists")

// GroupStore persists the group list as a single JSON array, rewritten in
// full on every create. A mutex guards the read-modify-write so concurrent
// creators cannot lose each other's updates.
type GroupStore struct {
	path string
	mu   sync.Mutex
}

// NewGroupStore creates a group store backed by the given file path.
func NewGroupStore(path string) *GroupStore {
	return &GroupStore{path: path}
}

// List returns all persisted groups. A missing or undecodable file yields
// an empty list.
func (s *GroupStore) List() []models.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Create derives the group ID from the name (lowercase, spaces to
// hyphens), rejects duplicates by ID or exact name, and appends the group
// to the persisted list.
func (s *GroupStore) Create(name string, deviceIDs []string) (models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := s.load()
	groupID := GroupIDFromName(name)
	for _, g := range groups {
		if g.Name == name || g.GroupID == groupID {
			return models.Group{}, ErrGroupExists
		}
	}

	group := models.Group{GroupID: groupID, Name: name, DeviceIDs: deviceIDs}
	groups = append(groups, group)
	if err := s.save(groups); err != nil {
		return models.Group{}, err
	}
	return group, nil
}

// GroupIDFromName derives the stable group identifier from a display name.
func GroupIDFromName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func (s *GroupStore) load() []models.Group {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.Group{}
	}
	var groups []models.Group
	if err := json.Unmarshal(data, &groups); err != nil {
		return []models.Group{}
	}
	return groups
}

func (s *GroupStore) save(groups []models.Group) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
