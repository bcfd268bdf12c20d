package test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"testing"
)

const (
	Session = iota
	Bookmarks
	Uncompressable
	Runs
	Tiny
)

var (
	cacheSession   = genSession(1 << 20)
	cacheBookmarks = genBookmarks(2000)
	cacheRandom    = genUncompressable(256 << 10)
	cacheRuns      = genRuns(512 << 10)
)

// Various samples for testing different use cases
func LoadSample(t testing.TB, ty int) []byte {

	switch ty {
	case Session:
		return cacheSession
	case Bookmarks:
		return cacheBookmarks
	case Uncompressable:
		return cacheRandom
	case Runs:
		return cacheRuns
	case Tiny:
		return []byte(`{"v":1}`)
	}

	t.Fatalf("Cannot find sample")
	return nil
}

// Return copy of the sample to allow manipulation without corruption.

func DupeSample(t testing.TB, ty int) []byte {
	return bytes.Clone(LoadSample(t, ty))
}

func AllSamples() map[string]int {
	return map[string]int{
		"session":        Session,
		"bookmarks":      Bookmarks,
		"uncompressable": Uncompressable,
		"runs":           Runs,
		"tiny":           Tiny,
	}
}

// Shaped like a sessionstore recovery file.
func genSession(targetSize int) []byte {
	var (
		rng = rand.New(rand.NewPCG(1, 2))
		buf bytes.Buffer
	)

	buf.WriteString(`{"version":["sessionrestore",1],"windows":[{"tabs":[`)
	for i := 0; buf.Len() < targetSize; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf,
			`{"entries":[{"url":"https://host%d.example.org/path/%d?q=%x","title":"Page %d","cacheKey":%d,"ID":%d,"docshellUUID":"{%08x-%04x}"}],"lastAccessed":%d,"hidden":false,"index":1}`,
			rng.IntN(50), rng.IntN(1000), rng.Uint32(), i, rng.IntN(1<<20), i, rng.Uint32(), rng.Uint32()&0xFFFF, 1700000000000+rng.Int64N(1<<32),
		)
	}
	buf.WriteString(`]}],"selectedWindow":1}`)
	return buf.Bytes()
}

// Shaped like a bookmarkbackups tree.
func genBookmarks(nLeaves int) []byte {
	var (
		rng = rand.New(rand.NewPCG(3, 4))
		buf bytes.Buffer
	)

	buf.WriteString(`{"guid":"root________","title":"","type":"text/x-moz-place-container","children":[`)
	for i := 0; i < nLeaves; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		if i%25 == 0 {
			fmt.Fprintf(&buf, `{"guid":"folder%05d","title":"Folder %d","type":"text/x-moz-place-container","children":[]}`, i, i)
			continue
		}
		fmt.Fprintf(&buf, `{"guid":"%012x","title":"Bookmark %d","type":"text/x-moz-place","uri":"https://site%d.example.net/%d"}`, rng.Uint64()&0xFFFFFFFFFFFF, i, rng.IntN(200), i)
	}
	buf.WriteString(`]}`)
	return buf.Bytes()
}

func genUncompressable(sz int) []byte {
	rng := rand.New(rand.NewPCG(5, 6))

	data := make([]byte, sz)
	for i := range data {
		data[i] = byte(rng.Uint32())
	}
	return data
}

// Long single byte runs exercise overlapping matches with offset 1.
func genRuns(sz int) []byte {
	data := make([]byte, 0, sz)
	for b := byte('a'); len(data) < sz; b++ {
		n := min(sz-len(data), 1+int(b)*37)
		data = append(data, bytes.Repeat([]byte{b}, n)...)
	}
	return data
}

func Sha2sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
