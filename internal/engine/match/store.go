package match

import (
	"context"
	"errors"
	"sync"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// ErrResumeNotFound is returned by Get and Delete for unknown IDs.
var ErrResumeNotFound = errors.New("resume not found")

// ResumeStore persists uploaded resumes and their analysis attributes.
type ResumeStore interface {
	Add(ctx context.Context, rec engine.ResumeRecord) error
	Get(ctx context.Context, id string) (engine.ResumeRecord, error)
	// List returns up to limit records, newest first, plus the total
	// count in the store. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]engine.ResumeRecord, int, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

var (
	storeMu     sync.RWMutex
	activeStore ResumeStore
)

// SetStore installs the process-wide resume store.
func SetStore(s ResumeStore) {
	storeMu.Lock()
	defer storeMu.Unlock()
	activeStore = s
}

// Store returns the installed resume store, or nil when persistence is
// not configured.
func Store() ResumeStore {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return activeStore
}
