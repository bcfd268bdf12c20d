package header

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/prequel-dev/mozlz4/internal/pkg/zerr"
)

type HeaderT struct {
	OriginalSz uint32
	PayloadSz  int
}

// ParseHeader validates the container header in 'data' and returns it
// along with the compressed payload that follows.  The payload aliases 'data'.
func ParseHeader(data []byte) (hdr HeaderT, payload []byte, err error) {
	if len(data) < Size {
		err = zerr.WrapCorruptedAt(zerr.ErrTruncatedHeader, len(data))
		return
	}

	if !bytes.Equal(data[:magicSz], Magic[:]) {
		err = zerr.WrapCorrupted(zerr.ErrBadMagic)
		return
	}

	payload = data[Size:]
	hdr.OriginalSz = binary.LittleEndian.Uint32(data[magicSz:Size])
	hdr.PayloadSz = len(payload)
	return
}

// CheckSize refuses declared sizes that exceed 'maxSize' bytes or that
// would require more than 'maxRatio' output bytes per payload byte.
// A non-positive limit disables that check.
func CheckSize(hdr HeaderT, maxSize int64, maxRatio int) error {
	sz := uint64(hdr.OriginalSz)

	if maxSize > 0 && sz > uint64(maxSize) {
		return fmt.Errorf("%w: declared %d exceeds limit %d", zerr.ErrSuspiciousSize, sz, maxSize)
	}

	if maxRatio > 0 {
		limit := uint64(maxRatio)*uint64(hdr.PayloadSz) + ratioSlack
		if sz > limit {
			return fmt.Errorf("%w: declared %d for %d byte payload", zerr.ErrSuspiciousSize, sz, hdr.PayloadSz)
		}
	}

	return nil
}
