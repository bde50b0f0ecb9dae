// Package journal owns the append-only run log. One NDJSON line per run;
// the file is opened for append and closed on every write, so no handle
// survives across runs.
package journal

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"llm-signal-bot/internal/types"
)

type Journal struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Journal {
	return &Journal{path: path}
}

// NewRunID mints a sortable unique ID for a run record.
func NewRunID() string {
	return ulid.Make().String()
}

// Append writes one run record as a single line. The caller decides what
// to do with a failure; the pipeline treats journaling as diagnostic and
// ignores it.
func (j *Journal) Append(rec types.RunRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if dir := filepath.Dir(j.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f, string(b))
	return err
}

// ReadAll loads every record currently in the journal, skipping lines
// that fail to parse. Used by the daily summary and by tests.
func (j *Journal) ReadAll() ([]types.RunRecord, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	b, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var recs []types.RunRecord
	for _, line := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var rec types.RunRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// CompressOlder gzips rotated journal files older than retentionDays in
// the journal's directory. Zero or negative retention disables it.
func (j *Journal) CompressOlder(retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	root := filepath.Dir(j.path)
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if filepath.Ext(p) != ".log" || p == j.path {
			return nil
		}
		info, er := os.Stat(p)
		if er != nil || !info.ModTime().Before(cutoff) {
			return nil
		}

		gz := p + ".gz"
		if _, e2 := os.Stat(gz); e2 == nil {
			return os.Remove(p)
		}

		in, e3 := os.Open(p)
		if e3 != nil {
			return nil
		}
		defer in.Close()

		out, e4 := os.OpenFile(gz, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if e4 != nil {
			return nil
		}
		gw := gzip.NewWriter(out)
		if _, e5 := io.Copy(gw, in); e5 == nil {
			_ = gw.Close()
			_ = out.Close()
			_ = os.Remove(p)
		} else {
			_ = gw.Close()
			_ = out.Close()
		}
		return nil
	})
}
