package mozlz4

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/prequel-dev/mozlz4/internal/pkg/opts"
)

const (
	sessionBackupDir = "sessionstore-backups"
	bookmarkDir      = "bookmarkbackups"
	bookmarkPrefix   = "bookmarks-"
	containerExt     = "lz4"
)

// Snapshot is the decoded content of the first usable candidate file.
type Snapshot struct {
	Path string
	Data []byte
}

// SessionCandidates lists session snapshot files of the profile at
// 'profileDir', most current first.
func SessionCandidates(profileDir string) []string {
	return []string{
		filepath.Join(profileDir, sessionBackupDir, "recovery.jsonlz4"),
		filepath.Join(profileDir, sessionBackupDir, "recovery.baklz4"),
		filepath.Join(profileDir, "sessionstore.jsonlz4"),
		filepath.Join(profileDir, sessionBackupDir, "previous.jsonlz4"),
	}
}

// BookmarkCandidates lists bookmark backups of the profile at 'profileDir',
// newest first.  Backup names embed their date so they sort by name.
func BookmarkCandidates(profileDir string) ([]string, error) {
	dir := filepath.Join(profileDir, bookmarkDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, bookmarkPrefix) || !strings.HasSuffix(name, containerExt) {
			continue
		}
		names = append(names, name)
	}

	slices.Sort(names)
	slices.Reverse(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// LoadFirst decodes the first candidate in 'paths' that reads and decodes
// cleanly.  Skipped candidates are reported via WithRejectCallback.
//
// If every candidate fails, the error matches ErrNoSnapshot and wraps each
// candidate's failure.  If 'ctx' is done first its error is returned; a
// decode already in flight is abandoned, not interrupted.
func LoadFirst(ctx context.Context, paths []string, opts ...OptT) (Snapshot, error) {
	o := parseOpts(opts...)

	errList := []error{ErrNoSnapshot}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return Snapshot{}, err
		}

		data, err := readFileCtx(ctx, path, &o)
		switch {
		case err == nil:
			return Snapshot{Path: path, Data: data}, nil
		case ctx.Err() != nil && errors.Is(err, ctx.Err()):
			return Snapshot{}, err
		}

		o.RejectCallback(path, err)
		errList = append(errList, fmt.Errorf("%s: %w", path, err))
	}

	return Snapshot{}, errors.Join(errList...)
}

func readFileCtx(ctx context.Context, path string, o *opts.OptsT) ([]byte, error) {
	type resultT struct {
		data []byte
		err  error
	}

	// Buffered so an abandoned decode does not leak its goroutine.
	ch := make(chan resultT, 1)

	go func() {
		data, _, err := readFile(path, o)
		ch <- resultT{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.data, r.err
	}
}
