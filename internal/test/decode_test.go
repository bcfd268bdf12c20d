package test

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/prequel-dev/mozlz4"
	"github.com/prequel-dev/mozlz4/internal/pkg/blk"
	"github.com/prequel-dev/mozlz4/internal/pkg/compress"
	"github.com/stretchr/testify/require"
)

func testBorrowed(t testing.TB) {
	if v := blk.CntBorrowed(); v != 0 {
		t.Errorf("Fail block cnt test: %v", v)
	}
}

// Encode with every level and decode with both decoders.
func TestRoundTripSamples(t *testing.T) {
	defer testBorrowed(t)

	for name, ty := range AllSamples() {
		src := LoadSample(t, ty)
		sha2 := Sha2sum(src)

		for _, lvl := range []mozlz4.LevelT{mozlz4.Level1, mozlz4.Level4, mozlz4.Level10} {
			t.Run(fmt.Sprintf("%s_level_%d", name, lvl), func(t *testing.T) {
				data, err := mozlz4.Encode(src, mozlz4.WithLevel(lvl))
				require.NoError(t, err)

				dec, err := mozlz4.Decode(data)
				require.NoError(t, err)
				require.Equal(t, sha2, Sha2sum(dec))

				payload, sz, err := mozlz4.ParseHeader(data)
				require.NoError(t, err)

				ref := make([]byte, sz)
				n, err := compress.NewReference().Decompress(payload, ref)
				require.NoError(t, err)
				require.Equal(t, int(sz), n)
				require.Equal(t, sha2, Sha2sum(ref))
			})
		}
	}
}

// Blocks produced by pierrec/lz4 directly, wrapped in a header by hand.
func TestDecodeForeignBlocks(t *testing.T) {
	for name, ty := range AllSamples() {
		t.Run(name, func(t *testing.T) {
			src := LoadSample(t, ty)

			cmp := make([]byte, lz4.CompressBlockBound(len(src)))
			n, err := lz4.CompressBlock(src, cmp, nil)
			require.NoError(t, err)
			if n == 0 {
				t.Skip("backend declined input")
			}

			file := append(mozlz4.Magic[:], byte(len(src)), byte(len(src)>>8), byte(len(src)>>16), byte(len(src)>>24))
			file = append(file, cmp[:n]...)

			dec, err := mozlz4.Decode(file)
			require.NoError(t, err)
			require.True(t, bytes.Equal(src, dec))
		})
	}
}

// Random single byte damage must never panic and must never yield a
// buffer of the wrong length.
func TestDecodeDamaged(t *testing.T) {
	var (
		rng = rand.New(rand.NewPCG(9, 9))
		src = LoadSample(t, Bookmarks)
	)

	data, err := mozlz4.Encode(src)
	require.NoError(t, err)

	for i := 0; i < 2000; i++ {
		dmg := bytes.Clone(data)
		pos := mozlz4.HeaderSize + rng.IntN(len(dmg)-mozlz4.HeaderSize)
		dmg[pos] ^= byte(1 + rng.IntN(255))

		dec, err := mozlz4.Decode(dmg)
		if err != nil {
			require.True(t, mozlz4.Corrupted(err), "pos %d: %v", pos, err)
			require.Nil(t, dec)
			continue
		}

		// Damage inside literals decodes to different content of the same size.
		require.Len(t, dec, len(src))
	}
}

// The native decoder and the reference must agree on every valid block.
func TestDecodeMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 42))

	for i := 0; i < 200; i++ {
		var (
			sz  = 1 + rng.IntN(64<<10)
			src = make([]byte, sz)
		)

		// Small alphabet so matches of all offsets appear.
		alpha := 1 + rng.IntN(8)
		for j := range src {
			src[j] = byte('a' + rng.IntN(alpha))
		}

		data, err := mozlz4.Encode(src, mozlz4.WithLevel(mozlz4.LevelT(1+i%10)))
		require.NoError(t, err)

		payload, osz, err := mozlz4.ParseHeader(data)
		require.NoError(t, err)

		native, err := mozlz4.DecompressBlock(payload, osz)
		require.NoError(t, err)

		ref := make([]byte, osz)
		_, err = compress.NewReference().Decompress(payload, ref)
		require.NoError(t, err)

		require.True(t, bytes.Equal(native, ref), "iteration %d", i)
		require.True(t, bytes.Equal(native, src), "iteration %d", i)
	}
}
