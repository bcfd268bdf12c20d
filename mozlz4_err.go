package mozlz4

import (
	"errors"

	"github.com/prequel-dev/mozlz4/internal/pkg/zerr"
)

//  Forward declare internal errors

const (
	ErrCorrupted       = zerr.ErrCorrupted
	ErrBadMagic        = zerr.ErrBadMagic
	ErrTruncatedHeader = zerr.ErrTruncatedHeader
	ErrTruncatedInput  = zerr.ErrTruncatedInput
	ErrCorruptOffset   = zerr.ErrCorruptOffset
	ErrOutputOverflow  = zerr.ErrOutputOverflow
	ErrSuspiciousSize  = zerr.ErrSuspiciousSize
	ErrNoSnapshot      = zerr.ErrNoSnapshot
	ErrEncode          = zerr.ErrEncode
)

// Returns true if 'err' indicates that the input is not a valid container.
func Corrupted(err error) bool {
	return errors.Is(err, ErrCorrupted)
}
