package compress

import (
	"errors"

	"github.com/pierrec/lz4/v4"
	"github.com/prequel-dev/mozlz4/internal/pkg/zerr"
)

type Decompressor interface {
	Decompress(src, dst []byte) (int, error)
}

// NewReference returns the pierrec/lz4 block decoder.  It is used as an
// independent oracle against the native decoder.
func NewReference() Decompressor {
	return referenceDecompressor{}
}

type referenceDecompressor struct {
}

func (referenceDecompressor) Decompress(src, dst []byte) (int, error) {
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return 0, errors.Join(zerr.ErrCorrupted, err)
	}
	return n, nil
}
