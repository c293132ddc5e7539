// Package cachekey derives stable cache keys for component render output.
//
// Keys are a function of the component name and its render props only.
// Equal props always produce the same key - the clock never participates,
// so time-based expiry stays the sole time-dependent factor in caching.
package cachekey

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/vmihailenco/msgpack/v5"
)

// FromProps returns a deterministic key for a component name and its props.
//
// Props are serialized with msgpack; map keys are sorted during encoding so
// equal maps yield equal keys regardless of iteration order. Props must be
// msgpack-serializable - channels, funcs, and cyclic values return an error.
func FromProps(name string, props any) (string, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(props); err != nil {
		return "", err
	}

	h := sha256.New()
	h.Write([]byte(name))
	h.Write([]byte{0}) // separator so ("ab","c") and ("a","bc") differ
	h.Write(buf.Bytes())
	return name + "-" + hex.EncodeToString(h.Sum(nil)[:8]), nil
}
