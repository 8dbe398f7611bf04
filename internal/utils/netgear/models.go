package netgear

import (
	"strings"

	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/util"
)

// UnknownModel is the display name for magics missing from the model table
const UnknownModel = "unknown"

// Model associates a router model name with its configuration magic
type Model struct {
	Name  string
	Magic uint32
}

// models is the compiled-in model table. The first entry is the fallback.
var models = []Model{
	{Name: UnknownModel, Magic: types.MagicUnknown},
	{Name: "WNDR4500v2", Magic: types.MagicWNDR4500v2},
}

// Models returns a copy of the model table
func Models() []Model {
	out := make([]Model, len(models))
	copy(out, models)
	return out
}

// DeriveMagic computes the configuration magic of a router model name: the
// name is NUL padded (or truncated) to 16 bytes and its four little-endian
// words are XORed together. The name stops at the first NUL byte.
func DeriveMagic(name string) uint32 {
	var buf [types.ModelNameSize]byte
	if i := strings.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	copy(buf[:], name)

	magic := util.ReadUint32LE(buf[0:4])
	magic ^= util.ReadUint32LE(buf[4:8])
	magic ^= util.ReadUint32LE(buf[8:12])
	magic ^= util.ReadUint32LE(buf[12:16])
	return magic
}

// ModelName returns the model registered for magic, or "unknown"
func ModelName(magic uint32) string {
	for _, m := range models {
		if m.Magic == magic {
			return m.Name
		}
	}
	return models[0].Name
}

// LookupModel finds a model by name, ignoring case
func LookupModel(name string) (Model, bool) {
	for _, m := range models {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Model{}, false
}
