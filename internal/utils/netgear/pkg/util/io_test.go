package util

import (
	"errors"
	"testing"

	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
)

func TestReadBytes(t *testing.T) {
	buf := []byte{0, 1, 2, 3, 4, 5, 6, 7}

	got, err := ReadBytes(buf, 2, 4)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if len(got) != 4 || got[0] != 2 || got[3] != 5 {
		t.Fatalf("ReadBytes = %v, want [2 3 4 5]", got)
	}

	// The result is a view of buf, not a copy
	got[0] = 0xAA
	if buf[2] != 0xAA {
		t.Errorf("ReadBytes result does not share memory with its input")
	}
}

func TestReadBytesOutOfBounds(t *testing.T) {
	buf := make([]byte, 8)
	tests := []struct {
		name           string
		offset, length int
	}{
		{"past end", 4, 5},
		{"negative offset", -1, 2},
		{"negative length", 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadBytes(buf, tt.offset, tt.length)
			if !errors.Is(err, types.ErrTruncated) {
				t.Errorf("expected ErrTruncated, got %v", err)
			}
		})
	}
}
