package ops

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prequel-dev/mozlz4"
	"github.com/sirupsen/logrus"
)

func RunDecompress() error {
	files := CLI.Decompress.Files

	if len(files) == 0 || (len(files) == 1 && files[0] == "-") {
		return _decompressStream()
	}

	if CLI.Decompress.Output != "" && len(files) > 1 {
		return errors.New("output name requires a single input file")
	}

	// Resolve every destination before decoding anything.
	dsts := make([]string, len(files))
	for i, name := range files {
		dst, err := outputName(false, name, CLI.Decompress.Output)
		if err != nil {
			return err
		}
		if err := checkOverwrite(dst, CLI.Decompress.Force); err != nil {
			return err
		}
		dsts[i] = dst
	}

	opts := append(decodeOpts(), mozlz4.WithParallel(CLI.Cpus))

	return _decompress(files, dsts, opts...)
}

func _decompressStream() error {
	data, err := mozlz4.ReadFrom(os.Stdin, decodeOpts()...)
	if err != nil {
		return err
	}

	dst := CLI.Decompress.Output
	if dst == "" {
		dst = strStdout
	}

	if err := checkOverwrite(dst, CLI.Decompress.Force); err != nil {
		return err
	}

	return writeOutput(dst, data)
}

func _decompress(files, dsts []string, opts ...mozlz4.OptT) error {

	var (
		pw progress.Writer
		tr *progress.Tracker
	)

	showResults := !CLI.Decompress.Quiet && dsts[0] != strStdout

	if showResults {
		msg := "Decompressing"
		pw = newProgressWriter(1)
		pw.SetMessageLength(len(msg))

		tr = &progress.Tracker{
			Message: msg,
			Total:   int64(len(files)),
			Units:   progress.UnitsDefault,
		}

		pw.AppendTracker(tr)

		cbHandler := func(done, total int) {
			tr.SetValue(int64(done))
		}

		opts = append(opts, mozlz4.WithProgress(cbHandler))

		go pw.Render()
	}

	var (
		start   = time.Now()
		results = mozlz4.DecodeFiles(context.Background(), files, opts...)
		tdiff   = time.Since(start)
		errList []error
	)

	if pw != nil {
		tr.MarkAsDone()
		waitRender(pw)
	}

	t := table.NewWriter()
	t.SetTitle("Decompress results")
	t.SetStyle(table.StyleColoredBright)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Input", "Output", "InSize", "OutSize", "Ratio", "Digest", "Status"})

	for i, r := range results {
		fields := logrus.Fields{"file": r.Path, "output": dsts[i]}

		if r.Err == nil {
			r.Err = writeOutput(dsts[i], r.Data)
		}

		if r.Err != nil {
			log.WithFields(fields).WithError(r.Err).Error("Fail decompress")
			errList = append(errList, fmt.Errorf("%s: %w", r.Path, r.Err))
			t.AppendRow(table.Row{r.Path, "", r.InSz, "", "", "", r.Err.Error()})
			continue
		}

		log.WithFields(fields).WithField("size", len(r.Data)).Debug("Decompressed")
		t.AppendRow(table.Row{
			r.Path,
			dsts[i],
			r.InSz,
			len(r.Data),
			ratio(r.InSz, int64(len(r.Data))),
			fmtDigest(mozlz4.Digest(r.Data)),
			"ok",
		})
	}

	if showResults {
		t.AppendFooter(table.Row{"", "", "", "", "", "Duration", tdiff.Round(time.Microsecond)})
		t.Render()
	}

	return errors.Join(errList...)
}

func fmtDigest(d uint64) string {
	return fmt.Sprintf("%016x", d)
}

func fmtPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
