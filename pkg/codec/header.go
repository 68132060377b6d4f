package codec

import (
	"encoding/binary"
	"unsafe"
)

// Wire lengths of the supported header formats, in bytes.
const (
	OldHeaderLen  = 26
	OdcHeaderLen  = 76
	NewcHeaderLen = 110
)

// Magic values identifying each header format. OldMagic is stored as a
// native-order uint16; the text magics are stored as literal ASCII digits.
const (
	OdcMagic     = "070707"
	NewcMagic    = "070701"
	NewcCRCMagic = "070702"
)

// OldMagic is the two-byte magic of the old binary format as it appears on
// the wire.
var OldMagic = [2]byte{0xc7, 0x71}

// Header is the capability shared by all header formats: projecting the
// record to its exact wire bytes.
//
// The returned slice aliases the header's memory. It must not be mutated,
// and it must not be read after the header is mutated or goes out of
// scope.
type Header interface {
	Bytes() []byte
}

// OldHeader is the old binary cpio header: thirteen 16-bit fields stored
// in the platform's native byte order, 26 bytes on the wire.
//
// Mtime and Filesize are 32-bit quantities split across two 16-bit words,
// most significant word first.
type OldHeader struct {
	Magic    uint16
	Dev      uint16
	Ino      uint16
	Mode     uint16
	UID      uint16
	GID      uint16
	Nlink    uint16
	Rdev     uint16
	Mtime    [2]uint16
	Namesize uint16
	Filesize [2]uint16
}

// OdcHeader is the portable ASCII (odc) header: every field is a
// zero-padded decimal number stored as ASCII digits, 76 bytes on the wire.
type OdcHeader struct {
	Magic    [6]byte
	Dev      [6]byte
	Ino      [6]byte
	Mode     [6]byte
	UID      [6]byte
	GID      [6]byte
	Nlink    [6]byte
	Rdev     [6]byte
	Mtime    [11]byte
	Namesize [6]byte
	Filesize [11]byte
}

// NewcHeader is the SVR4 "new ASCII" header: every field after the magic
// is an 8-char zero-padded hexadecimal number, 110 bytes on the wire.
//
// The same shape serves both the newc and the newc-with-checksum formats;
// they differ only in the magic stamped at construction. Check is only
// meaningful under NewcCRCMagic.
type NewcHeader struct {
	Magic     [6]byte
	Ino       [8]byte
	Mode      [8]byte
	UID       [8]byte
	GID       [8]byte
	Nlink     [8]byte
	Mtime     [8]byte
	Filesize  [8]byte
	Devmajor  [8]byte
	Devminor  [8]byte
	Rdevmajor [8]byte
	Rdevminor [8]byte
	Namesize  [8]byte
	Check     [8]byte
}

// The wire contract is load-bearing: a one-byte drift in any struct above
// corrupts every archive written. Refuse to compile if the in-memory sizes
// diverge from the declared wire lengths.
var (
	_ [OldHeaderLen]struct{}  = [unsafe.Sizeof(OldHeader{})]struct{}{}
	_ [OdcHeaderLen]struct{}  = [unsafe.Sizeof(OdcHeader{})]struct{}{}
	_ [NewcHeaderLen]struct{} = [unsafe.Sizeof(NewcHeader{})]struct{}{}
)

// NewOldHeader returns a blank old binary header carrying its magic. All
// other fields are zero.
func NewOldHeader() *OldHeader {
	return &OldHeader{Magic: binary.NativeEndian.Uint16(OldMagic[:])}
}

// NewOdcHeader returns a blank odc header carrying its magic. All other
// fields are zero bytes.
func NewOdcHeader() *OdcHeader {
	h := &OdcHeader{}
	copy(h.Magic[:], OdcMagic)
	return h
}

// NewNewcHeader returns a blank newc header carrying the "070701" magic.
// All other fields are zero bytes.
func NewNewcHeader() *NewcHeader {
	h := &NewcHeader{}
	copy(h.Magic[:], NewcMagic)
	return h
}

// NewNewcCRCHeader returns a blank newc header carrying the "070702"
// checksum magic. Shape and zero-fill are identical to NewNewcHeader; only
// the magic differs.
func NewNewcCRCHeader() *NewcHeader {
	h := &NewcHeader{}
	copy(h.Magic[:], NewcCRCMagic)
	return h
}

// Bytes projects the header to its 26 wire bytes.
func (h *OldHeader) Bytes() []byte {
	return rawBytes(h, OldHeaderLen)
}

// Bytes projects the header to its 76 wire bytes.
func (h *OdcHeader) Bytes() []byte {
	return rawBytesNoAlign(h, OdcHeaderLen)
}

// Bytes projects the header to its 110 wire bytes.
func (h *NewcHeader) Bytes() []byte {
	return rawBytesNoAlign(h, NewcHeaderLen)
}

// Clone returns a copy of the header. The copy shares no memory with the
// original.
func (h *OldHeader) Clone() *OldHeader {
	c := *h
	return &c
}

// Clone returns a copy of the header.
func (h *OdcHeader) Clone() *OdcHeader {
	c := *h
	return &c
}

// Clone returns a copy of the header.
func (h *NewcHeader) Clone() *NewcHeader {
	c := *h
	return &c
}
