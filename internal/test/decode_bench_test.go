package test

import (
	"testing"

	"github.com/prequel-dev/mozlz4"
	"github.com/prequel-dev/mozlz4/internal/pkg/compress"
)

func BenchmarkDecodeSession(b *testing.B) {
	benchmarkNative(b, LoadSample(b, Session))
}

func BenchmarkReferenceSession(b *testing.B) {
	benchmarkReference(b, LoadSample(b, Session))
}

func BenchmarkDecodeRuns(b *testing.B) {
	benchmarkNative(b, LoadSample(b, Runs))
}

func BenchmarkReferenceRuns(b *testing.B) {
	benchmarkReference(b, LoadSample(b, Runs))
}

func benchmarkNative(b *testing.B, sample []byte) {
	data, err := mozlz4.Encode(sample)
	if err != nil {
		b.Fatalf("err %v", err)
	}

	b.SetBytes(int64(len(sample)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := mozlz4.Decode(data); err != nil {
			b.Fatalf("err %v", err)
		}
	}
}

func benchmarkReference(b *testing.B, sample []byte) {
	data, err := mozlz4.Encode(sample)
	if err != nil {
		b.Fatalf("err %v", err)
	}

	payload, sz, err := mozlz4.ParseHeader(data)
	if err != nil {
		b.Fatalf("err %v", err)
	}

	var (
		dc  = compress.NewReference()
		dst = make([]byte, sz)
	)

	b.SetBytes(int64(len(sample)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := dc.Decompress(payload, dst); err != nil {
			b.Fatalf("err %v", err)
		}
	}
}
