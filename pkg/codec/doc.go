// Package codec models the on-disk header record of a cpio archive entry.
//
// The cpio format family defines several mutually incompatible binary
// layouts for the same logical record. This package implements the three
// record shapes plus one sub-variant, unified behind the Header interface
// so archive-level code can treat any of them uniformly:
//
//	Format   Length  Encoding                        Magic
//	old      26      native binary, 16-bit fields    0xC7 0x71
//	odc      76      zero-padded decimal ASCII       "070707"
//	newc     110     zero-padded hex ASCII, 8 chars  "070701"
//	newc-crc 110     identical shape to newc         "070702"
//
// # Field Layout
//
// Fields appear in wire order with no padding between them; a header's
// serialized length is a compile-time constant and never varies with
// field contents. The old and odc shapes combine device numbers into one
// field, while newc splits major/minor for both dev and rdev and adds a
// checksum field.
//
// # Usage
//
// A constructor returns a blank header already stamped with its magic:
//
//	h := codec.NewNewcHeader()
//	copy(h.Namesize[:], "0000000c")
//	w.Write(h.Bytes())
//
// Construction is total and cannot fail. The magic is fixed at
// construction and never mutated by this package. All other fields are
// exported fixed-width arrays (or integers, for the old format) populated
// directly by the archive writer; the codec imposes no setters and no
// validation on field contents.
//
// # Byte Projection
//
// Bytes reinterprets the header's memory as its exact wire bytes without
// copying. The projection checks the in-memory size (always) and the
// alignment (for the binary old format) against the wire contract and
// panics on any mismatch: a wrong layout would silently corrupt every
// archive written, which is a programming error and not a recoverable
// condition. The returned slice is valid only while the header it was
// taken from is alive and unmutated.
//
// # Scope
//
// This package does not parse headers back from bytes, compute checksums,
// or apply archive-level padding rules. Those belong to the surrounding
// reader and writer layers.
//
// # Thread Safety
//
// Headers are plain values with no shared state. Concurrent readers of
// one header's byte view are safe as long as no goroutine concurrently
// mutates its fields; callers serialize writes.
package codec
