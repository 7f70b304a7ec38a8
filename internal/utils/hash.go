// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// contentHasherPool holds reusable unkeyed BLAKE2b-256 instances.
var contentHasherPool = sync.Pool{
	New: func() any {
		// blake2b.New256 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	},
}

// ContentHash returns the hex encoded BLAKE2b-256 digest of an item payload
// together with its content type. Two items with the same type and payload
// produce the same hash, which the item store uses for duplicate detection.
func ContentHash(contentType string, data []byte) string {
	h := contentHasherPool.Get().(hash.Hash)
	defer contentHasherPool.Put(h)

	h.Reset()
	h.Write([]byte(contentType))
	h.Write([]byte{0})
	h.Write(data)

	return hex.EncodeToString(h.Sum(nil))
}
