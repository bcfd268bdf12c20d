// Package mozlz4 decodes the "mozLz4" container Firefox uses to persist
// session and bookmark snapshots: an 8 byte magic, a little-endian u32
// decompressed size and a single raw LZ4 block.
package mozlz4

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/prequel-dev/mozlz4/internal/pkg/blk"
	"github.com/prequel-dev/mozlz4/internal/pkg/block"
	"github.com/prequel-dev/mozlz4/internal/pkg/compress"
	"github.com/prequel-dev/mozlz4/internal/pkg/header"
	"github.com/prequel-dev/mozlz4/internal/pkg/opts"
	"github.com/prequel-dev/mozlz4/internal/pkg/zerr"
)

const (
	// Size in bytes of the container header.
	HeaderSize = header.Size
)

// Magic is the tag that opens every container.
var Magic = header.Magic

// ParseHeader validates the header of the container in 'data'.
// Returns the compressed payload, which aliases 'data', and the
// declared decompressed size.
//
// Declared sizes beyond the WithMaxSize and WithMaxRatio limits fail
// with ErrSuspiciousSize.
func ParseHeader(data []byte, opts ...OptT) (payload []byte, originalSize uint32, err error) {
	o := parseOpts(opts...)
	return parseHeader(data, &o)
}

func parseHeader(data []byte, o *opts.OptsT) ([]byte, uint32, error) {
	hdr, payload, err := header.ParseHeader(data)
	if err != nil {
		return nil, 0, err
	}

	if err := header.CheckSize(hdr, o.MaxSize, o.MaxRatio); err != nil {
		return nil, 0, err
	}

	return payload, hdr.OriginalSz, nil
}

// DecompressBlock decodes the raw LZ4 block 'payload' into a new buffer of
// exactly 'originalSize' bytes.  No buffer is returned on error.
func DecompressBlock(payload []byte, originalSize uint32) ([]byte, error) {
	if uint64(originalSize) > math.MaxInt {
		return nil, fmt.Errorf("%w: declared %d", ErrSuspiciousSize, originalSize)
	}

	dst := make([]byte, originalSize)

	n, err := block.Decompress(payload, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decode validates the container in 'data' and returns its decompressed content.
func Decode(data []byte, opts ...OptT) ([]byte, error) {
	o := parseOpts(opts...)
	return decode(data, &o)
}

func decode(data []byte, o *opts.OptsT) ([]byte, error) {
	payload, sz, err := parseHeader(data, o)
	if err != nil {
		return nil, err
	}
	return DecompressBlock(payload, sz)
}

// ReadFrom reads a whole container from 'rd' and decodes it.
func ReadFrom(rd io.Reader, opts ...OptT) ([]byte, error) {
	o := parseOpts(opts...)
	data, err := readAll(rd, &o)
	if err != nil {
		return nil, err
	}
	return decode(data, &o)
}

// ReadFile reads and decodes the container at 'path'.
func ReadFile(path string, opts ...OptT) ([]byte, error) {
	o := parseOpts(opts...)
	data, _, err := readFile(path, &o)
	return data, err
}

// Returns decoded content and the container size.
func readFile(path string, o *opts.OptsT) ([]byte, int64, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer fh.Close()

	raw, err := readAll(fh, o)
	if err != nil {
		return nil, int64(len(raw)), err
	}

	data, err := decode(raw, o)
	return data, int64(len(raw)), err
}

// Slurp 'rd', refusing containers too large to satisfy MaxSize.
func readAll(rd io.Reader, o *opts.OptsT) ([]byte, error) {
	limit := o.ReadLimit(header.Size)
	if limit <= 0 {
		return io.ReadAll(rd)
	}

	data, err := io.ReadAll(io.LimitReader(rd, limit+1))
	switch {
	case err != nil:
		return nil, err
	case int64(len(data)) > limit:
		return nil, fmt.Errorf("%w: container exceeds %d bytes", ErrSuspiciousSize, limit)
	}

	return data, nil
}

// Encode wraps 'src' in a container.  Input the LZ4 backend will not
// compress is stored as a literal only block.
func Encode(src []byte, opts ...OptT) ([]byte, error) {
	if uint64(len(src)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes exceeds container limit", ErrEncode, len(src))
	}

	var (
		o       = parseOpts(opts...)
		scratch = blk.BorrowBlk(compress.CompressBound(len(src)))
	)

	defer blk.ReturnBlk(scratch)

	n, err := compress.NewCompressor(o.Level).Compress(src, scratch.Data())
	if err != nil || n == 0 {
		if n, err = compress.CompressLiterals(src, scratch.Data()); err != nil {
			return nil, errors.Join(zerr.ErrEncode, err)
		}
	}

	dst := make([]byte, 0, header.Size+n)
	dst = header.AppendHeader(dst, uint32(len(src)))
	return append(dst, scratch.Prefix(n)...), nil
}

// IsContainer reports whether 'data' opens with the container magic.
func IsContainer(data []byte) bool {
	return len(data) >= header.Size && bytes.HasPrefix(data, header.Magic[:])
}

// Digest returns the xxhash64 of decoded content.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}
