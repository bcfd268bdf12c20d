package mozlz4

import (
	"context"
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/prequel-dev/mozlz4/internal/pkg/opts"
)

// ResultT is the outcome of decoding one file in DecodeFiles.
type ResultT struct {
	Path string
	Data []byte
	InSz int64
	Err  error
}

// DecodeFiles reads and decodes each file in 'paths' independently.
// Results are returned in the order of 'paths'.
//
// Files not yet started when 'ctx' is done fail with ctx.Err().
func DecodeFiles(ctx context.Context, paths []string, opts ...OptT) []ResultT {
	var (
		o       = parseOpts(opts...)
		results = make([]ResultT, len(paths))
		wp      = o.WorkerPool
		prog    = newProgress(len(paths), o.Handler)
	)

	if wp == nil && o.NParallel > 0 {
		gp := workerpool.New(o.NParallel)
		defer gp.StopWait()
		wp = gp
	}

	if wp == nil {
		for i, path := range paths {
			results[i] = decodeOne(ctx, path, &o)
			prog.inc()
		}
		return results
	}

	var wg sync.WaitGroup
	wg.Add(len(paths))

	for i, path := range paths {
		wp.Submit(func() {
			defer wg.Done()
			results[i] = decodeOne(ctx, path, &o)
			prog.inc()
		})
	}

	wg.Wait()
	return results
}

func decodeOne(ctx context.Context, path string, o *opts.OptsT) ResultT {
	if err := ctx.Err(); err != nil {
		return ResultT{Path: path, Err: err}
	}

	data, inSz, err := readFile(path, o)
	return ResultT{Path: path, Data: data, InSz: inSz, Err: err}
}

type progressT struct {
	mux   sync.Mutex
	done  int
	total int
	cb    opts.ProgressFuncT
}

func newProgress(total int, cb opts.ProgressFuncT) *progressT {
	return &progressT{total: total, cb: cb}
}

func (p *progressT) inc() {
	p.mux.Lock()
	defer p.mux.Unlock()
	p.done++
	p.cb(p.done, p.total)
}
