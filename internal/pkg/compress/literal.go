package compress

import (
	"github.com/prequel-dev/mozlz4/internal/pkg/zerr"
)

const (
	runMask    = 0x0F
	extendByte = 0xFF
)

// LiteralBound is the encoded size of a literal-only block of 'sz' bytes.
func LiteralBound(sz int) int {
	n := 1 + sz
	if sz >= runMask {
		n += (sz-runMask)/extendByte + 1
	}
	return n
}

// CompressLiterals encodes 'src' as a single literal-only sequence.
// An empty 'src' yields the one byte block 0x00.
func CompressLiterals(src, dst []byte) (int, error) {
	if len(dst) < LiteralBound(len(src)) {
		return 0, zerr.ErrEncode
	}

	var (
		di  = 1
		rem = len(src)
	)

	if rem < runMask {
		dst[0] = byte(rem << 4)
	} else {
		dst[0] = runMask << 4
		rem -= runMask
		for ; rem >= extendByte; rem -= extendByte {
			dst[di] = extendByte
			di++
		}
		dst[di] = byte(rem)
		di++
	}

	di += copy(dst[di:], src)
	return di, nil
}
