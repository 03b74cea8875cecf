package menufile

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"grocymenu/internal/fileutil"
	"grocymenu/internal/organizer"
)

const lockRetryDelay = 100 * time.Millisecond

// Section is one category block in the output document.
type Section struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

// Sections orders categorized items by the taxonomy, skipping categories
// with no items.
func Sections(categorized organizer.Categorized, taxonomy organizer.Taxonomy) []Section {
	sections := make([]Section, 0, len(categorized))
	for _, category := range taxonomy.Categories {
		items, ok := categorized[category]
		if !ok || len(items) == 0 {
			continue
		}
		sections = append(sections, Section{Name: category, Items: append([]string(nil), items...)})
	}
	return sections
}

// Encode writes sections as block-style YAML.
func Encode(w io.Writer, sections []Section) error {
	if sections == nil {
		sections = []Section{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(sections); err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}
	return nil
}

// Decode parses a document produced by Encode.
func Decode(r io.Reader) ([]Section, error) {
	var sections []Section
	if err := yaml.NewDecoder(r).Decode(&sections); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	return sections, nil
}

// Writer replaces the menu file at Path.
type Writer struct {
	Path string
	// LockTimeout bounds the wait for a concurrent writer. Zero means 10s.
	LockTimeout time.Duration
}

// NewWriter returns a writer for path.
func NewWriter(path string) *Writer {
	return &Writer{Path: path}
}

// LockPath returns the lock file guarding Path. It lives in the system temp
// directory so the site's data directory only ever holds the menu file.
func (w *Writer) LockPath() string {
	target := w.Path
	if abs, err := filepath.Abs(target); err == nil {
		target = abs
	}
	sum := sha256.Sum256([]byte(target))
	return filepath.Join(os.TempDir(), "grocymenu-"+hex.EncodeToString(sum[:8])+".lock")
}

// Write encodes sections and atomically replaces the menu file. It returns
// the path written.
func (w *Writer) Write(ctx context.Context, sections []Section) (string, error) {
	if w == nil || w.Path == "" {
		return "", errors.New("menu output path is required")
	}

	var buf bytes.Buffer
	if err := Encode(&buf, sections); err != nil {
		return "", err
	}

	dir := filepath.Dir(w.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %q: %w", dir, err)
	}

	timeout := w.LockTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	lock := flock.New(w.LockPath())
	locked, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		return "", fmt.Errorf("acquire menu lock: %w", err)
	}
	if !locked {
		return "", fmt.Errorf("menu file %s is locked by another writer", w.Path)
	}
	defer func() { _ = lock.Unlock() }()

	if err := fileutil.WriteFileAtomic(w.Path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("replace menu file: %w", err)
	}
	return w.Path, nil
}
