package blk

import (
	"sync"
	"sync/atomic"
)

// Size classes for encode scratch space.  Snapshot files are usually
// well under a megabyte; larger requests fall through to the heap.
const (
	Sz64KB  = 64 << 10
	Sz256KB = 256 << 10
	Sz1MB   = 1 << 20
	Sz4MB   = 4 << 20
)

var (
	pool4MB   = sync.Pool{New: func() any { return &BlkT{data: make([]byte, Sz4MB)} }}
	pool1MB   = sync.Pool{New: func() any { return &BlkT{data: make([]byte, Sz1MB)} }}
	pool256KB = sync.Pool{New: func() any { return &BlkT{data: make([]byte, Sz256KB)} }}
	pool64KB  = sync.Pool{New: func() any { return &BlkT{data: make([]byte, Sz64KB)} }}
)

var cntBorrowed int64

func CntBorrowed() int64 {
	return atomic.LoadInt64(&cntBorrowed)
}

// BorrowBlk returns a block of at least 'sz' bytes trimmed to 'sz'.
// Must be paired with ReturnBlk.
func BorrowBlk(sz int) *BlkT {
	atomic.AddInt64(&cntBorrowed, 1)

	var b *BlkT
	switch {
	case sz <= Sz64KB:
		b = pool64KB.Get().(*BlkT)
	case sz <= Sz256KB:
		b = pool256KB.Get().(*BlkT)
	case sz <= Sz1MB:
		b = pool1MB.Get().(*BlkT)
	case sz <= Sz4MB:
		b = pool4MB.Get().(*BlkT)
	default:
		b = &BlkT{data: make([]byte, sz)}
	}

	b.Trim(sz)
	return b
}

func ReturnBlk(blk *BlkT) {
	if blk == nil {
		return
	}
	atomic.AddInt64(&cntBorrowed, -1)
	bsz := cap(blk.data)
	blk.data = blk.data[:bsz]
	switch bsz {
	case Sz4MB:
		pool4MB.Put(blk)
	case Sz1MB:
		pool1MB.Put(blk)
	case Sz256KB:
		pool256KB.Put(blk)
	case Sz64KB:
		pool64KB.Put(blk)
	default:
		// Oversized; let the GC have it.
	}
}
