package opts

import (
	"github.com/prequel-dev/mozlz4/internal/pkg/compress"
)

// Emits the number of finished files out of 'total'.
type ProgressFuncT func(done, total int)

// Emits a candidate file that was skipped along with the reason.
type RejectFuncT func(path string, err error)

type OptsT struct {
	NParallel      int
	Level          compress.LevelT
	MaxSize        int64
	MaxRatio       int
	Handler        ProgressFuncT
	RejectCallback RejectFuncT
	WorkerPool     WorkerPool
}

type WorkerPool interface {
	Submit(task func())
}

// ReadLimit is the largest container file worth reading given MaxSize,
// or zero when unbounded.
func (o OptsT) ReadLimit(hdrSz int) int64 {
	if o.MaxSize <= 0 {
		return 0
	}
	return int64(hdrSz) + int64(compress.CompressBound(int(o.MaxSize)))
}
