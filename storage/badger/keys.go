package badger

import (
	"encoding/binary"

	"github.com/poiesic/kazipot/core"
)

// Key prefixes for catalogue data
const (
	entryPrefix = "catent"
	entryIDSeq  = "catentseq"
)

// makeEntryKey generates a key for a catalogue entry by kind and ID.
// Format: prefix:kind:id with the ID in BigEndian order so iteration within
// one kind is ordered by ID.
func makeEntryKey(kind core.KindTag, id core.ID) []byte {
	prefix := makeKindPrefix(kind)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeKindPrefix generates the common key prefix of all entries of one kind.
func makeKindPrefix(kind core.KindTag) []byte {
	return []byte(entryPrefix + ":" + kind.String() + ":")
}
