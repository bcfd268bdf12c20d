package header

import (
	"encoding/binary"
)

const (
	Size       = 12
	magicSz    = 8
	ratioSlack = 16
)

// Firefox "mozLz4" container, version 0.
var Magic = [magicSz]byte{'m', 'o', 'z', 'L', 'z', '4', '0', 0}

// AppendHeader appends a container header declaring 'originalSz' to 'dst'.
func AppendHeader(dst []byte, originalSz uint32) []byte {
	dst = append(dst, Magic[:]...)
	return binary.LittleEndian.AppendUint32(dst, originalSz)
}
