// Package archive writes cpio archives in the formats modeled by the
// codec package.
//
// The package plays the archive-writer role around the header codec: it
// populates a blank wire header from a logical Header, projects it to
// bytes, and streams header, pathname, and data with the format's
// inter-entry padding and the TRAILER!!! terminator. Field-width
// validation happens here; a value that cannot fit its wire field is a
// recoverable writer error, never a codec concern.
//
// Writer provides entry-at-a-time streaming in the manner of archive/tar.
// Archive walks a directory tree and writes the whole of it. Compression
// wraps the archive stream (gzip, zstd, lz4).
//
// This package deliberately offers no reader; it only produces archives.
package archive
