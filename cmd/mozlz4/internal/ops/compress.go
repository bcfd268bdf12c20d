package ops

import (
	"errors"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prequel-dev/mozlz4"
)

func RunCompress() error {
	if CLI.Compress.Level < int(mozlz4.Level1) || CLI.Compress.Level > int(mozlz4.Level10) {
		return errors.New("compression level out of range")
	}

	dst, err := outputName(true, CLI.Compress.File, CLI.Compress.Output)
	if err != nil {
		return err
	}

	if err := checkOverwrite(dst, CLI.Compress.Force); err != nil {
		return err
	}

	src, name, err := readInput(CLI.Compress.File)
	if err != nil {
		return err
	}

	var (
		start      = time.Now()
		data, eerr = mozlz4.Encode(src, mozlz4.WithLevel(mozlz4.LevelT(CLI.Compress.Level)))
		tdiff      = time.Since(start)
	)

	if eerr != nil {
		return eerr
	}

	if err := writeOutput(dst, data); err != nil {
		return err
	}

	if dst == strStdout || CLI.Compress.Quiet {
		return nil
	}

	t := table.NewWriter()
	t.SetTitle("Compress results")
	t.SetStyle(table.StyleColoredBright)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Key", "Value"})
	t.AppendRows([]table.Row{
		{"Input", name},
		{"Output", dst},
		{"Level", CLI.Compress.Level},
		{"InSize", len(src)},
		{"OutSize", len(data)},
		{"Duration", tdiff.Round(time.Microsecond)},
		{"Ratio", ratio(int64(len(data)), int64(len(src)))},
		{"Digest", fmtDigest(mozlz4.Digest(src))},
	})
	t.Render()

	return nil
}
