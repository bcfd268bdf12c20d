package ops

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prequel-dev/mozlz4"
	"github.com/prequel-dev/mozlz4/internal/pkg/compress"
	"github.com/prequel-dev/mozlz4/internal/pkg/header"
)

func RunVerify() error {
	raw, name, err := readInput(CLI.Verify.File)
	if err != nil {
		return err
	}

	return _verify(raw, name)
}

func _verify(raw []byte, name string) error {
	hdr, payload, err := header.ParseHeader(raw)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleColoredBright)
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Verify results")
	t.AppendHeader(table.Row{"Key", "Value"})

	t.AppendRows([]table.Row{
		{"File name", name},
		{"Magic", strings.TrimRight(string(header.Magic[:]), "\x00")},
		{"Declared size", hdr.OriginalSz},
		{"Payload size", hdr.PayloadSz},
		{"Ratio", ratio(int64(hdr.PayloadSz), int64(hdr.OriginalSz))},
	})

	if err := header.CheckSize(hdr, CLI.MaxSize, mozlz4.DefaultMaxRatio); err != nil {
		return err
	}

	if CLI.Verify.Skip {
		t.Render()
		return nil
	}

	start := time.Now()
	native, err := mozlz4.DecompressBlock(payload, hdr.OriginalSz)
	nativeDur := time.Since(start)

	if err != nil {
		return err
	}

	var (
		ref = make([]byte, hdr.OriginalSz)
		dc  = compress.NewReference()
	)

	start = time.Now()
	n, rerr := dc.Decompress(payload, ref)
	refDur := time.Since(start)

	match := "yes"
	switch {
	case rerr != nil:
		match = fmt.Sprintf("reference failed: %v", rerr)
	case n != len(native) || !bytes.Equal(native, ref[:n]):
		match = "no"
	}

	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Native decode", nativeDur.Round(time.Microsecond)},
		{"Reference decode", refDur.Round(time.Microsecond)},
		{"Reference match", match},
		{"Digest", fmtDigest(mozlz4.Digest(native))},
	})
	t.Render()

	if match != "yes" {
		log.WithField("file", name).Warn("Reference decoder disagrees")
		return fmt.Errorf("reference mismatch: %s", match)
	}

	return nil
}
