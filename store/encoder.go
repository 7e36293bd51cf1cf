package store

import (
	"bytes"
	"encoding/binary"

	"github.com/vmihailenco/msgpack/v4"
	"gitlab.com/puppetk/puppetk"
)

// MakeKey of a predicate and id
func MakeKey(id []byte, predicate string) []byte {
	key := []byte(predicate)
	key = append(key, byte(':'))
	key = append(key, id...)
	return key
}

// GetID of key from a pred:key
func GetID(key []byte) []byte {
	split := bytes.SplitN(key, []byte(":"), 2)
	if len(split) == 1 {
		return []byte{}
	}
	return split[1]
}

// GetPredicate from pred:key
func GetPredicate(key []byte) []byte {
	split := bytes.SplitN(key, []byte(":"), 2)
	return split[0]
}

// EncodeSequence big endian so keys sort in insertion order
func EncodeSequence(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

// DecodeSequence from a key id
func DecodeSequence(id []byte) uint64 {
	if len(id) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(id)
}

// EncodeEvent into msgpack
func EncodeEvent(evt *puppetk.ResolutionEvent) ([]byte, error) {
	return msgpack.Marshal(evt)
}

// DecodeEvent from msgpack
func DecodeEvent(val []byte) (*puppetk.ResolutionEvent, error) {
	evt := &puppetk.ResolutionEvent{}
	if err := msgpack.Unmarshal(val, evt); err != nil {
		return nil, err
	}
	return evt, nil
}
