package mozlz4

import (
	"runtime"

	"github.com/prequel-dev/mozlz4/internal/pkg/compress"
	"github.com/prequel-dev/mozlz4/internal/pkg/opts"
)

// OptT is a function that sets an option on the decoder.
type OptT func(*opts.OptsT)

// WorkerPool is an interface for a worker pool implementation.
type WorkerPool = opts.WorkerPool

// LevelT is a type for compression level.
type LevelT = compress.LevelT

// Progress callback function type.
type CbProgressT = opts.ProgressFuncT

// Reject callback function type.
type CbRejectT = opts.RejectFuncT

const (
	// Fast block compressor
	Level1 LevelT = iota + 1
	Level2
	Level3
	Level4
	Level5
	Level6
	Level7
	Level8
	Level9
	Level10
)

const (
	// Largest declared size accepted by default.
	DefaultMaxSize = 1 << 30

	// An LZ4 block cannot expand a byte of input to more than 255 bytes
	// of output, so any larger declared ratio cannot be honest.
	DefaultMaxRatio = 255
)

/////////////////
// Decode options
/////////////////

// Refuse containers declaring more than 'n' decompressed bytes.
// Defaults to DefaultMaxSize.  Zero or negative disables the limit.
func WithMaxSize(n int64) OptT {
	return func(o *opts.OptsT) {
		o.MaxSize = n
	}
}

// Refuse containers declaring more than 'r' output bytes per payload byte.
// Defaults to DefaultMaxRatio.  Zero or negative disables the check.
func WithMaxRatio(r int) OptT {
	return func(o *opts.OptsT) {
		o.MaxRatio = r
	}
}

// Specify number of files to decode in parallel in DecodeFiles.
// Defaults to the CPU count.
//
//	0   Process synchronously
//	1+  Process asynchronously
//	<0  Process asynchronously with the number of goroutines up to the CPU count
func WithParallel(n int) OptT {
	return func(o *opts.OptsT) {
		numCPU := runtime.NumCPU()
		if n < 0 || n > numCPU {
			o.NParallel = numCPU
		} else {
			o.NParallel = n
		}
	}
}

// Optional worker pool for DecodeFiles.  Overrides WithParallel.
func WithWorkerPool(wp WorkerPool) OptT {
	return func(o *opts.OptsT) {
		o.WorkerPool = wp
	}
}

// DecodeFiles will emit (done, total) as each file finishes.
//
// Note: Callback may be called from a worker goroutine, but calls are
// serialized and 'done' increases monotonically.
func WithProgress(cb CbProgressT) OptT {
	return func(o *opts.OptsT) {
		o.Handler = cb
	}
}

// LoadFirst will emit each candidate path it skips and why.
func WithRejectCallback(cb CbRejectT) OptT {
	return func(o *opts.OptsT) {
		o.RejectCallback = cb
	}
}

/////////////////
// Encode options
/////////////////

// Specify compression level [1-10].  Defaults to Level1.
func WithLevel(lvl LevelT) OptT {
	return func(o *opts.OptsT) {
		switch {
		case lvl < Level1:
			lvl = Level1
		case lvl > Level10:
			lvl = Level10
		}
		o.Level = lvl
	}
}

func defaultHandler(int, int) {}

func defaultReject(string, error) {}

func parseOpts(optFuncs ...OptT) opts.OptsT {
	o := opts.OptsT{
		Level:          Level1,           // Fast by default
		NParallel:      runtime.NumCPU(), // One decode per core
		MaxSize:        DefaultMaxSize,
		MaxRatio:       DefaultMaxRatio,
		Handler:        defaultHandler, // NOOP
		RejectCallback: defaultReject,  // NOOP
	}

	for _, oFunc := range optFuncs {
		oFunc(&o)
	}

	if o.Handler == nil {
		o.Handler = defaultHandler
	}
	if o.RejectCallback == nil {
		o.RejectCallback = defaultReject
	}

	return o
}
