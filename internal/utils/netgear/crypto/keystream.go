package crypto

import (
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/util"
)

// KeyStream generates the per-block DES keys of a configuration backup.
// Every call to Next advances the state by one step. A KeyStream must not be
// shared between codec passes running at the same time.
type KeyStream struct {
	state [8]byte
}

// NewKeyStream returns a key stream positioned at the fixed "NtgrBak" seed
func NewKeyStream() *KeyStream {
	ks := &KeyStream{}
	ks.Reset()
	return ks
}

// Reset puts the key stream back on the seed
func (ks *KeyStream) Reset() {
	ks.state = [8]byte{}
	copy(ks.state[:], types.KeySeed)
}

// Next advances the state and returns the key for the next block.
//
// Only the first three state bytes move: byte 0 steps by 8 and carries into
// byte 1, which carries into byte 2. The key bytes are taken from the state
// read as a big-endian integer shifted by multiples of 7, so each key byte
// straddles two state bytes. Backups produced by the router depend on this
// exact layout.
func (ks *KeyStream) Next() [8]byte {
	prev := ks.state[0]
	ks.state[0] += 8
	if ks.state[0] < prev {
		prev = ks.state[1]
		ks.state[1]++
		if ks.state[1] < prev {
			ks.state[2]++
		}
	}

	v := util.ReadUint64BE(ks.state[:])

	var key [8]byte
	for i := range key {
		key[i] = byte(v >> (56 - 7*uint(i)))
	}
	return key
}
