package asset

import (
	"strings"

	"github.com/google/uuid"
)

// GenID produces the unique identifier embedded in storage keys.
// Injected so tests can pin it.
type GenID func() uuid.UUID

// KeyAddresser derives collision-resistant storage keys of the form
// "<folder>/<id>[-<suffix>].webp". It never reads storage state, so
// two concurrent calls cannot collide and need no coordination.
type KeyAddresser struct {
	genID GenID
}

// NewKeyAddresser constructs a KeyAddresser. A nil genID falls back to
// random UUIDs.
func NewKeyAddresser(genID GenID) *KeyAddresser {
	if genID == nil {
		genID = uuid.New
	}
	return &KeyAddresser{genID: genID}
}

// NewKey composes a key around a fresh identifier. Keys are never
// reused: uploads are not idempotent by key.
func (k *KeyAddresser) NewKey(folder, suffix string) string {
	return k.Key(k.genID(), folder, suffix)
}

// Key composes the key for a known identifier, used when renditions of
// one image must share their base identifier.
func (k *KeyAddresser) Key(id uuid.UUID, folder, suffix string) string {
	name := id.String()
	if suffix != "" {
		name += "-" + suffix
	}
	return strings.Trim(folder, "/") + "/" + name + OutputExt
}

// NewID exposes the generator for callers that mint one identifier for
// a whole rendition set.
func (k *KeyAddresser) NewID() uuid.UUID {
	return k.genID()
}
