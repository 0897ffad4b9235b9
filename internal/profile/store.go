// Package profile persists the local user profile whose id is sent with the
// save-wallet notification.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/AlexZinkM/wallet-connect/internal/model"

	"github.com/google/uuid"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrProfileExists is returned by Init when a non-empty profile file is present
var ErrProfileExists = errors.New("profile already exists")

// Store is a JSON profile file
type Store struct {
	path string
}

// NewStore creates a Store for the file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the profile file path
func (s *Store) Path() string {
	return s.path
}

// UserID returns the stored user id, or "" if there is no profile file
func (s *Store) UserID() (string, error) {
	p, err := s.Load()
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return p.UserID, nil
}

// Load reads the profile file
func (s *Store) Load() (*model.Profile, error) {
	fileData, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("profile file does not exist: %w", os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(fileData) == 0 {
		return nil, errors.New("file is empty")
	}

	// Skip UTF-8 BOM if present
	if len(fileData) >= 3 && fileData[0] == 0xEF && fileData[1] == 0xBB && fileData[2] == 0xBF {
		fileData = fileData[3:]
	}

	var p model.Profile
	if err := json.Unmarshal(fileData, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile file: %w", err)
	}
	return &p, nil
}

// Init writes a new profile. An empty userID gets a random UUID.
// An existing non-empty profile is never overwritten.
func (s *Store) Init(userID string) (*model.Profile, error) {
	if fileInfo, err := os.Stat(s.path); err == nil && fileInfo.Size() > 0 {
		return nil, ErrProfileExists
	}

	if userID == "" {
		userID = uuid.NewString()
	}
	p := &model.Profile{
		UserID:    userID,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	fileData, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	// Add UTF-8 BOM for proper display in Windows
	fileData = append(append([]byte{}, utf8BOM...), fileData...)

	if err := os.WriteFile(s.path, fileData, 0600); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	return p, nil
}
