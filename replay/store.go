package replay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/beatchain/logging"
	"github.com/quasilyte/gdata"
)

// ErrNotFound is returned when no recording is stored under a name.
var ErrNotFound = errors.New("recording not found")

// Backend is the item storage a Store writes to. *gdata.Manager
// satisfies it.
type Backend interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store keeps recordings under short names.
type Store struct {
	backend Backend
}

// OpenStore opens the per-user data directory for appName.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open replay store: %w", err)
	}
	return NewStore(m), nil
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

func itemKey(name string) string {
	return "replay_" + strings.ToLower(name)
}

// Save writes rec under name, replacing any earlier recording.
func (s *Store) Save(name string, rec *Recording) error {
	data, err := rec.Encode()
	if err != nil {
		return err
	}
	if err := s.backend.SaveItem(itemKey(name), data); err != nil {
		return fmt.Errorf("save replay %s: %w", name, err)
	}
	logging.Log.Infow("replay saved", "name", name, "frames", len(rec.Frames))
	return nil
}

// Load reads the recording stored under name.
func (s *Store) Load(name string) (*Recording, error) {
	data, err := s.backend.LoadItem(itemKey(name))
	if err != nil {
		return nil, fmt.Errorf("load replay %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("load replay %s: %w", name, ErrNotFound)
	}
	return Decode(data)
}

// Delete clears the recording stored under name.
func (s *Store) Delete(name string) error {
	if err := s.backend.SaveItem(itemKey(name), nil); err != nil {
		return fmt.Errorf("delete replay %s: %w", name, err)
	}
	return nil
}
