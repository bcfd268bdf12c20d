package zerr

import "fmt"

type constError string

func (err constError) Error() string {
	return string(err)
}

const (
	ErrCorrupted       constError = "mozlz4 corrupted"
	ErrBadMagic        constError = "mozlz4 bad magic"
	ErrTruncatedHeader constError = "mozlz4 truncated header"
	ErrTruncatedInput  constError = "mozlz4 truncated input"
	ErrCorruptOffset   constError = "mozlz4 corrupt match offset"
	ErrOutputOverflow  constError = "mozlz4 output overflow"
	ErrSuspiciousSize  constError = "mozlz4 suspicious declared size"
	ErrNoSnapshot      constError = "mozlz4 no valid snapshot found"
	ErrEncode          constError = "mozlz4 fail encode"
)

func WrapCorrupted(err error) error {
	return fmt.Errorf("%w: %w", ErrCorrupted, err)
}

// WrapCorruptedAt tags 'err' as corrupted and records the input offset
// at which the problem was detected.
func WrapCorruptedAt(err error, off int) error {
	return fmt.Errorf("%w: %w at offset %d", ErrCorrupted, err, off)
}
