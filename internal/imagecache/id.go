// Package imagecache defines the opaque, content-addressed image handle
// the core stores on Segments and Runs, plus an optional host-side cache
// implementation. The core never decodes, fetches, or frees image bytes —
// it only stores and compares ID values (see spec.md §9, "Ownership of
// images").
package imagecache

import (
	"crypto/sha256"
	"encoding/hex"
)

// ID is a content-addressed handle to image bytes owned by an external
// cache. The zero ID denotes "no icon".
type ID [sha256.Size]byte

// Empty reports whether id is the zero value (no icon assigned).
func (id ID) Empty() bool {
	return id == ID{}
}

// String renders id as a hex string, for debugging/logging only.
func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// IDFromBytes derives the content-addressed ID for the given image bytes.
// Hosts call this when registering an icon; the core never calls it on the
// timing-critical path.
func IDFromBytes(data []byte) ID {
	return sha256.Sum256(data)
}
