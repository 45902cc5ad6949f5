// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"
	"sync"
)

// hasherPool holds reusable SHA-256 instances for [ETag].
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// ETag returns a strong entity tag (quoted hex SHA-256) for a response body.
//
// A hash.Hash is taken from the pool, reset, used once and put back, which
// keeps list responses from allocating a new hasher each time.
func ETag(body []byte) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(body)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return `"` + hex.EncodeToString(sum) + `"`
}

// ETagMatches reports whether an If-None-Match header value matches etag.
// It understands "*" and comma-separated lists and ignores weak prefixes.
func ETagMatches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}

	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
