package zerr

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapCorrupted(t *testing.T) {
	err := WrapCorrupted(ErrBadMagic)

	switch {
	case !errors.Is(err, ErrCorrupted):
		t.Errorf("Expected corrupted: %v", err)
	case !errors.Is(err, ErrBadMagic):
		t.Errorf("Expected bad magic: %v", err)
	case errors.Is(err, ErrTruncatedInput):
		t.Errorf("Unexpected match: %v", err)
	}
}

func TestWrapCorruptedAt(t *testing.T) {
	err := WrapCorruptedAt(ErrCorruptOffset, 42)

	switch {
	case !errors.Is(err, ErrCorrupted):
		t.Errorf("Expected corrupted: %v", err)
	case !errors.Is(err, ErrCorruptOffset):
		t.Errorf("Expected corrupt offset: %v", err)
	case !strings.HasSuffix(err.Error(), "at offset 42"):
		t.Errorf("Expected offset in message: %v", err)
	}
}
