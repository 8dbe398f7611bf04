package cryptoutil

import (
	"bytes"
	"errors"
	"testing"

	commonerrors "github.com/deploymenttheory/go-ntgrbak/internal/common/errors"
)

func TestHasherKnownDigests(t *testing.T) {
	tests := []struct {
		algorithm HashAlgorithm
		want      string
	}{
		{MD5, "900150983cd24fb0d6963f7d28e17f72"},
		{SHA1, "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{SHA256, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{BLAKE2b, "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"},
		{"SHA256", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			h, err := NewHasher(tt.algorithm)
			if err != nil {
				t.Fatalf("NewHasher(%q) failed: %v", tt.algorithm, err)
			}

			got, err := h.Hash([]byte("abc"))
			if err != nil {
				t.Fatalf("Hash failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Hash = %s, want %s", got, tt.want)
			}

			got, err = h.HashReader(bytes.NewReader([]byte("abc")))
			if err != nil {
				t.Fatalf("HashReader failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("HashReader = %s, want %s", got, tt.want)
			}

			ok, err := h.Verify([]byte("abc"), tt.want)
			if err != nil || !ok {
				t.Errorf("Verify = %v, %v; want true", ok, err)
			}
		})
	}
}

func TestNewHasherUnsupported(t *testing.T) {
	_, err := NewHasher("crc32")
	if !errors.Is(err, commonerrors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
