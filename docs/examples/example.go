package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prequel-dev/mozlz4"
)

// Demonstrate writing a snapshot container.
func encode(path string) error {

	data, err := mozlz4.Encode([]byte(`{"windows":[{"tabs":[]}]}`), mozlz4.WithLevel(mozlz4.Level3))
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Demonstrate loading the freshest session snapshot of a profile,
// falling back to older copies when the active file is unusable.
func loadSession(profile string) ([]byte, error) {

	// Decode runs on a goroutine; on timeout it is abandoned.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	snap, err := mozlz4.LoadFirst(
		ctx,
		mozlz4.SessionCandidates(profile),
		mozlz4.WithRejectCallback(func(path string, err error) {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", path, err)
		}),
	)
	if err != nil {
		return nil, err
	}

	return snap.Data, nil
}

func main() {

	profile, err := os.MkdirTemp("", "profile")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(profile)

	backups := filepath.Join(profile, "sessionstore-backups")
	if err := os.Mkdir(backups, 0700); err != nil {
		panic(err)
	}

	// Only the backup exists; the active recovery file is skipped.
	if err := encode(filepath.Join(backups, "recovery.baklz4")); err != nil {
		panic(err)
	}

	data, err := loadSession(profile)
	if err != nil {
		panic(err)
	}

	// Output the result
	fmt.Println(string(data))
}
