package blk

// Protect the 'data' slice to avoid an accidental
// reslice which changes the capacity and breaks the pool.
type BlkT struct {
	data []byte
}

func (b *BlkT) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

func (b *BlkT) Cap() int {
	return cap(b.data)
}

func (b *BlkT) Trim(sz int) {
	b.data = b.data[:sz]
}

func (b *BlkT) Prefix(pos int) []byte {
	return b.data[:pos]
}

func (b *BlkT) Data() []byte {
	return b.data
}
