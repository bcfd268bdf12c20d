package compress

import (
	"bytes"
	"fmt"
	"testing"
)

func TestCompressLiterals(t *testing.T) {

	tests := map[string]struct {
		sz     int
		prefix []byte
	}{
		"empty":    {sz: 0, prefix: []byte{0x00}},
		"five":     {sz: 5, prefix: []byte{0x50}},
		"fifteen":  {sz: 15, prefix: []byte{0xF0, 0x00}},
		"eighteen": {sz: 18, prefix: []byte{0xF0, 0x03}},
		"boundary": {sz: 15 + 255, prefix: []byte{0xF0, 0xFF, 0x00}},
		"large":    {sz: 1000, prefix: []byte{0xF0, 0xFF, 0xFF, 0xFF, 0xDC}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			src := bytes.Repeat([]byte{'q'}, tc.sz)
			dst := make([]byte, LiteralBound(tc.sz))

			n, err := CompressLiterals(src, dst)
			switch {
			case err != nil:
				t.Errorf("Expected clean encode: %v", err)
			case n != len(dst):
				t.Errorf("Expected %d bytes, got %d", len(dst), n)
			case !bytes.Equal(dst[:len(tc.prefix)], tc.prefix):
				t.Errorf("Bad prefix: % x", dst[:len(tc.prefix)])
			case !bytes.Equal(dst[len(tc.prefix):n], src):
				t.Errorf("Literal payload mismatch")
			}
		})
	}
}

func TestCompressLiteralsShortDst(t *testing.T) {
	if _, err := CompressLiterals(make([]byte, 20), make([]byte, 20)); err == nil {
		t.Errorf("Expected error on short dst")
	}
}

// Literal blocks and backend blocks must both decode with the reference decoder.
func TestCompressReference(t *testing.T) {
	src := bytes.Repeat([]byte(`{"windows":[{"tabs":[]}]}`), 512)

	for lvl := LevelFast; lvl <= LevelMax; lvl++ {
		t.Run(fmt.Sprintf("level_%d", lvl), func(t *testing.T) {
			dst := make([]byte, CompressBound(len(src)))

			n, err := NewCompressor(lvl).Compress(src, dst)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if n == 0 {
				t.Fatalf("Expected compressible input")
			}

			out := make([]byte, len(src))
			dn, err := NewReference().Decompress(dst[:n], out)
			switch {
			case err != nil:
				t.Errorf("Reference decode failed: %v", err)
			case dn != len(src) || !bytes.Equal(out, src):
				t.Errorf("Round trip mismatch")
			}
		})
	}

	t.Run("literals", func(t *testing.T) {
		dst := make([]byte, LiteralBound(len(src)))
		n, err := CompressLiterals(src, dst)
		if err != nil {
			t.Fatalf("CompressLiterals failed: %v", err)
		}

		out := make([]byte, len(src))
		dn, err := NewReference().Decompress(dst[:n], out)
		switch {
		case err != nil:
			t.Errorf("Reference decode failed: %v", err)
		case dn != len(src) || !bytes.Equal(out, src):
			t.Errorf("Round trip mismatch")
		}
	})
}
