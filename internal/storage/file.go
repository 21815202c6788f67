package storage

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"sync"
)

// File is a KV persisted as a single JSON document on disk, so cart and
// session state survive a process restart. A missing or unreadable file
// loads as empty rather than failing.
type File struct {
	mu     sync.Mutex
	path   string
	slots  map[string]json.RawMessage
	logger *log.Logger
}

// NewFile loads (or initializes) the KV at path.
func NewFile(path string, logger *log.Logger) *File {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	f := &File{path: path, slots: make(map[string]json.RawMessage), logger: logger}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Printf("storage: read path=%s error=%v, starting empty", path, err)
		}
		return f
	}
	if err := json.Unmarshal(data, &f.slots); err != nil {
		logger.Printf("storage: decode path=%s error=%v, starting empty", path, err)
		f.slots = make(map[string]json.RawMessage)
	}
	return f
}

func (f *File) Get(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.slots[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

func (f *File) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !json.Valid(value) {
		// Stored values are embedded into the document verbatim, so they
		// must be JSON themselves.
		raw, err := json.Marshal(string(value))
		if err != nil {
			return err
		}
		value = raw
	}
	f.slots[key] = json.RawMessage(value)
	return f.flush()
}

func (f *File) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.slots, key)
	return f.flush()
}

func (f *File) flush() error {
	data, err := json.MarshalIndent(f.slots, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
