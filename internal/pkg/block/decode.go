package block

import (
	"math"

	"github.com/prequel-dev/mozlz4/internal/pkg/zerr"
)

// see lz4_Block_format.md
const (
	MinMatch   = 4
	runMask    = 0x0F
	extendByte = 0xFF
)

// Decompress decodes the single LZ4 block in 'src' into 'dst'.
//
// The length of 'dst' is the exact decompressed size; the block carries no
// length of its own.  Returns the number of bytes written, which on success
// is always len(dst).  On error the contents of 'dst' are undefined.
func Decompress(src, dst []byte) (int, error) {
	var si, di int

	for si < len(src) && di < len(dst) {

		token := src[si]
		si++

		// Literals
		litLen := int(token >> 4)
		if litLen == runMask {
			var err error
			if litLen, si, err = extendLen(src, si, litLen); err != nil {
				return 0, err
			}
		}

		if litLen > len(src)-si {
			return 0, zerr.WrapCorruptedAt(zerr.ErrTruncatedInput, si)
		}
		if litLen > len(dst)-di {
			return 0, zerr.WrapCorruptedAt(zerr.ErrOutputOverflow, si)
		}

		di += copy(dst[di:di+litLen], src[si:si+litLen])
		si += litLen

		// Last sequence carries literals only.
		if si == len(src) {
			break
		}

		// Match
		if len(src)-si < 2 {
			return 0, zerr.WrapCorruptedAt(zerr.ErrTruncatedInput, si)
		}

		offset := int(src[si]) | int(src[si+1])<<8
		if offset == 0 || offset > di {
			return 0, zerr.WrapCorruptedAt(zerr.ErrCorruptOffset, si)
		}
		si += 2

		matchLen := int(token & runMask)
		if matchLen == runMask {
			var err error
			if matchLen, si, err = extendLen(src, si, matchLen); err != nil {
				return 0, err
			}
		}
		matchLen += MinMatch

		if matchLen > len(dst)-di {
			return 0, zerr.WrapCorruptedAt(zerr.ErrOutputOverflow, si)
		}

		di = copyMatch(dst, di, offset, matchLen)
	}

	if di != len(dst) {
		return 0, zerr.WrapCorruptedAt(zerr.ErrTruncatedInput, si)
	}

	return di, nil
}

// Accumulate 0xFF continuation bytes onto 'n' starting at src[si].
// Returns the final length and the new input position.
func extendLen(src []byte, si, n int) (int, int, error) {
	for {
		if si >= len(src) {
			return 0, si, zerr.WrapCorruptedAt(zerr.ErrTruncatedInput, si)
		}

		b := src[si]
		si++

		// Cannot possibly fit any output buffer; bail before int wraps.
		if n > math.MaxInt32-extendByte {
			return 0, si, zerr.WrapCorruptedAt(zerr.ErrOutputOverflow, si)
		}

		n += int(b)
		if b != extendByte {
			return n, si, nil
		}
	}
}

// Copy 'n' bytes from 'offset' bytes behind 'di' in 'dst' to dst[di:].
// Caller guarantees 0 < offset <= di and di+n <= len(dst).
func copyMatch(dst []byte, di, offset, n int) int {
	si := di - offset

	if offset >= n {
		// Regions are disjoint.
		return di + copy(dst[di:di+n], dst[si:si+n])
	}

	// Overlapping; each written byte feeds the reads that trail it.
	for end := di + n; di < end; di++ {
		dst[di] = dst[si]
		si++
	}

	return di
}
