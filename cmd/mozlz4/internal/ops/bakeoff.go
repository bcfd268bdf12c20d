package ops

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prequel-dev/mozlz4"
	"github.com/prequel-dev/mozlz4/internal/pkg/block"
	"github.com/prequel-dev/mozlz4/internal/pkg/compress"
	"github.com/prequel-dev/mozlz4/internal/pkg/header"
)

func RunBakeoff() error {
	raw, name, err := readInput(CLI.Bakeoff.File)
	if err != nil {
		return err
	}

	if CLI.Bakeoff.Iterations <= 0 {
		return errors.New("iterations must be positive")
	}

	hdr, payload, err := header.ParseHeader(raw)
	if err != nil {
		return err
	}

	if err := header.CheckSize(hdr, CLI.MaxSize, mozlz4.DefaultMaxRatio); err != nil {
		return err
	}

	pw := newProgressWriter(2)
	go pw.Render()

	var (
		dst     = make([]byte, hdr.OriginalSz)
		results []resultT
	)

	for _, d := range []struct {
		name string
		dc   compress.Decompressor
	}{
		{"mozlz4", nativeDecompressor{}},
		{"lz4", compress.NewReference()},
	} {
		r, err := _bake(d.name, d.dc, payload, dst, pw)
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		results = append(results, r)
	}

	waitRender(pw)

	return outputResults(name, int64(len(raw)), int64(hdr.OriginalSz), results)
}

type nativeDecompressor struct{}

func (nativeDecompressor) Decompress(src, dst []byte) (int, error) {
	return block.Decompress(src, dst)
}

type resultT struct {
	algo string
	dur  time.Duration
}

func _bake(algo string, dc compress.Decompressor, payload, dst []byte, pw progress.Writer) (resultT, error) {
	tr := &progress.Tracker{
		Message: "Processing " + algo,
		Total:   int64(CLI.Bakeoff.Iterations),
		Units:   progress.UnitsDefault,
	}

	pw.AppendTracker(tr)

	start := time.Now()
	for i := 0; i < CLI.Bakeoff.Iterations; i++ {
		if _, err := dc.Decompress(payload, dst); err != nil {
			tr.MarkAsErrored()
			return resultT{}, err
		}
		tr.Increment(1)
	}

	tr.MarkAsDone()
	return resultT{algo: algo, dur: time.Since(start)}, nil
}

func outputResults(name string, srcSz, dstSz int64, results []resultT) error {
	fmt.Println()

	t := table.NewWriter()
	t.SetTitle("Bakeoff Results")
	t.SetStyle(table.StyleColoredBright)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Algo", "File", "SrcSize", "DstSize", "Iterations", "Total", "PerOp", "MB/s"})

	iters := CLI.Bakeoff.Iterations
	for _, r := range results {
		perOp := r.dur / time.Duration(iters)
		mbs := float64(dstSz) * float64(iters) / r.dur.Seconds() / (1 << 20)
		t.AppendRow(table.Row{r.algo, name, srcSz, dstSz, iters, r.dur.Round(time.Microsecond), perOp.Round(time.Microsecond), fmt.Sprintf("%.1f", mbs)})
	}

	t.Render()
	return nil
}
