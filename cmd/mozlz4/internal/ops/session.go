package ops

import (
	"context"
	"fmt"
	"time"

	"github.com/prequel-dev/mozlz4"
	"github.com/sirupsen/logrus"
)

func RunSession() error {
	var (
		c     = CLI.Session
		paths = mozlz4.SessionCandidates(c.Profile)
	)
	return _loadFirst(paths, c.Output, c.Force, c.Timeout)
}

func RunBookmarks() error {
	c := CLI.Bookmarks

	paths, err := mozlz4.BookmarkCandidates(c.Profile)
	if err != nil {
		return fmt.Errorf("cannot list bookmark backups: %w", err)
	}

	return _loadFirst(paths, c.Output, c.Force, c.Timeout)
}

func _loadFirst(paths []string, output string, force bool, timeout time.Duration) error {
	if output == "" {
		output = strStdout
	}

	if err := checkOverwrite(output, force); err != nil {
		return err
	}

	var (
		ctx    = context.Background()
		cancel = context.CancelFunc(func() {})
	)

	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	rejectCB := func(path string, err error) {
		log.WithField("file", path).WithError(err).Warn("Skipping snapshot candidate")
	}

	opts := append(decodeOpts(), mozlz4.WithRejectCallback(rejectCB))

	snap, err := mozlz4.LoadFirst(ctx, paths, opts...)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"file": snap.Path,
		"size": len(snap.Data),
	}).Info("Loaded snapshot")

	return writeOutput(output, snap.Data)
}
