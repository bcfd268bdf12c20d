package compress

import (
	"github.com/pierrec/lz4/v4"
)

type LevelT int

const (
	LevelFast LevelT = 1
	LevelMax  LevelT = 10
)

type Compressor interface {
	// Compress 'src' into 'dst' as one block.  Returns 0 when the backend
	// declines to compress the input; see CompressLiterals.
	Compress(src, dst []byte) (int, error)
}

func NewCompressor(level LevelT) Compressor {
	if level <= LevelFast {
		return &fastCompressor{}
	}
	return NewCompressorHC(int(level - 1))
}

// Holds hash state reused between calls; not safe for concurrent use.
type fastCompressor struct {
	lc lz4.Compressor
}

func (c *fastCompressor) Compress(src, dst []byte) (int, error) {
	return c.lc.CompressBlock(src, dst)
}

func NewCompressorHC(level int) Compressor {
	if level > 9 {
		level = 9
	}
	return &hcCompressor{
		level: lz4Level(level),
	}
}

type hcCompressor struct {
	level lz4.CompressionLevel
}

func (c *hcCompressor) Compress(src, dst []byte) (int, error) {
	return lz4.CompressBlockHC(src, dst, c.level, nil, nil)
}

func lz4Level(l int) lz4.CompressionLevel {

	var lz4Level lz4.CompressionLevel
	switch l {
	case 0:
		lz4Level = lz4.Fast
	case 1:
		lz4Level = lz4.Level1
	case 2:
		lz4Level = lz4.Level2
	case 3:
		lz4Level = lz4.Level3
	case 4:
		lz4Level = lz4.Level4
	case 5:
		lz4Level = lz4.Level5
	case 6:
		lz4Level = lz4.Level6
	case 7:
		lz4Level = lz4.Level7
	case 8:
		lz4Level = lz4.Level8
	case 9:
		lz4Level = lz4.Level9
	default:
		panic("fail map lz4 compression level")
	}
	return lz4Level
}

// CompressBound returns the largest block either the backend or
// CompressLiterals can produce for 'sz' input bytes.
func CompressBound(sz int) int {
	return max(lz4.CompressBlockBound(sz), LiteralBound(sz))
}
