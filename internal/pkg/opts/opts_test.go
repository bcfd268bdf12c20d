package opts

import (
	"testing"

	"github.com/prequel-dev/mozlz4/internal/pkg/compress"
)

func TestReadLimit(t *testing.T) {
	var o OptsT

	if v := o.ReadLimit(12); v != 0 {
		t.Errorf("Expected unbounded, got %d", v)
	}

	o.MaxSize = 1 << 20
	want := int64(12 + compress.CompressBound(1<<20))

	switch v := o.ReadLimit(12); {
	case v != want:
		t.Errorf("Expected %d, got %d", want, v)
	case v <= o.MaxSize:
		t.Errorf("Limit must cover incompressible content: %d", v)
	}
}
