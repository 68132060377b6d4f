package archive

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/bjornk/knarr/pkg/codec"
)

// Trailer is the pathname of the terminating entry every cpio archive
// ends with.
const Trailer = "TRAILER!!!"

var (
	// ErrWriteTooLong is returned when more data is written for an entry
	// than its header's Size declared.
	ErrWriteTooLong = errors.New("archive: write too long")

	// ErrWriteAfterClose is returned when an entry or data is written to a
	// closed Writer.
	ErrWriteAfterClose = errors.New("archive: write after close")

	// ErrFieldOverflow is returned when a header value does not fit its
	// fixed-width wire field.
	ErrFieldOverflow = errors.New("archive: value does not fit header field")
)

// Format selects which of the cpio wire formats a Writer emits.
type Format int

const (
	FormatNewc    Format = iota // SVR4 "new ASCII", hex fields
	FormatNewcCRC               // SVR4 with checksum magic
	FormatOdc                   // portable ASCII, decimal fields
	FormatOld                   // old binary, native 16-bit fields
)

// ParseFormat maps a format name to its Format. Recognized names are
// "newc", "crc", "odc", and "bin" (alias "old").
func ParseFormat(s string) (Format, error) {
	switch s {
	case "newc":
		return FormatNewc, nil
	case "crc":
		return FormatNewcCRC, nil
	case "odc":
		return FormatOdc, nil
	case "bin", "old":
		return FormatOld, nil
	}
	return 0, fmt.Errorf("archive: unknown format %q", s)
}

func (f Format) String() string {
	switch f {
	case FormatNewc:
		return "newc"
	case FormatNewcCRC:
		return "crc"
	case FormatOdc:
		return "odc"
	case FormatOld:
		return "bin"
	}
	return "unknown"
}

// align is the boundary entries of this format are padded to.
func (f Format) align() int64 {
	switch f {
	case FormatNewc, FormatNewcCRC:
		return 4
	case FormatOld:
		return 2
	}
	return 1
}

// headerLen is the wire length of this format's header record.
func (f Format) headerLen() int64 {
	switch f {
	case FormatNewc, FormatNewcCRC:
		return codec.NewcHeaderLen
	case FormatOdc:
		return codec.OdcHeaderLen
	}
	return codec.OldHeaderLen
}

// Writer streams a cpio archive in one of the supported formats.
//
// WriteHeader begins an entry; the entry's data is then written through
// Write until Size bytes have been supplied. Close writes the trailer
// entry. Writer renders headers through the codec package and emits the
// projected bytes verbatim, followed by the NUL-terminated pathname and
// the entry data, applying the format's inter-entry padding.
type Writer struct {
	w         io.Writer
	format    Format
	remaining int64 // data bytes still expected for the open entry
	pad       int64 // zero bytes owed after the open entry's data
	closed    bool
}

// NewWriter returns a Writer emitting the given format onto w.
func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// WriteHeader begins a new entry. It returns an error if the previous
// entry's declared data was not fully written, or if any header value
// does not fit its wire field.
func (w *Writer) WriteHeader(hdr *Header) error {
	if w.closed {
		return ErrWriteAfterClose
	}
	if err := w.finishEntry(); err != nil {
		return err
	}
	if hdr.Name == "" {
		return errors.New("archive: entry name is empty")
	}

	namesize := int64(len(hdr.Name)) + 1 // wire count includes the NUL

	var err error
	switch w.format {
	case FormatOld:
		err = w.writeOld(hdr, namesize)
	case FormatOdc:
		err = w.writeOdc(hdr, namesize)
	case FormatNewc, FormatNewcCRC:
		err = w.writeNewc(hdr, namesize)
	default:
		err = fmt.Errorf("archive: unknown format %d", w.format)
	}
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w.w, hdr.Name); err != nil {
		return err
	}
	namePad := pad(w.format.headerLen()+namesize, w.format.align())
	if err := w.writeZeros(1 + namePad); err != nil {
		return err
	}

	w.remaining = hdr.Size
	w.pad = pad(hdr.Size, w.format.align())
	return nil
}

// Write supplies data for the entry begun by the last WriteHeader. Writing
// past the header's declared Size returns ErrWriteTooLong.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrWriteAfterClose
	}
	overflow := int64(len(p)) > w.remaining
	if overflow {
		p = p[:w.remaining]
	}
	n, err := w.w.Write(p)
	w.remaining -= int64(n)
	if err == nil && overflow {
		err = ErrWriteTooLong
	}
	return n, err
}

// Close completes the open entry and writes the trailer. It does not close
// the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	if err := w.WriteHeader(&Header{Name: Trailer, Links: 1}); err != nil {
		return err
	}
	if err := w.finishEntry(); err != nil {
		return err
	}
	w.closed = true
	return nil
}

func (w *Writer) finishEntry() error {
	if w.remaining > 0 {
		return fmt.Errorf("archive: entry data short by %d bytes", w.remaining)
	}
	if err := w.writeZeros(w.pad); err != nil {
		return err
	}
	w.pad = 0
	return nil
}

func (w *Writer) writeZeros(n int64) error {
	if n <= 0 {
		return nil
	}
	_, err := w.w.Write(make([]byte, n))
	return err
}

func (w *Writer) writeOld(hdr *Header, namesize int64) error {
	h := codec.NewOldHeader()

	var err error
	set16 := func(dst *uint16, field string, v int64) {
		if err != nil {
			return
		}
		if v < 0 || v > math.MaxUint16 {
			err = overflowErr(field, v)
			return
		}
		*dst = uint16(v)
	}
	set32 := func(dst *[2]uint16, field string, v int64) {
		if err != nil {
			return
		}
		if v < 0 || v > math.MaxUint32 {
			err = overflowErr(field, v)
			return
		}
		dst[0] = uint16(v >> 16) // most significant word first
		dst[1] = uint16(v)
	}

	set16(&h.Dev, "dev", combineDev(hdr.DevMajor, hdr.DevMinor))
	set16(&h.Ino, "ino", hdr.Inode)
	set16(&h.Mode, "mode", int64(hdr.Mode))
	set16(&h.UID, "uid", int64(hdr.UID))
	set16(&h.GID, "gid", int64(hdr.GID))
	set16(&h.Nlink, "nlink", int64(hdr.Links))
	set16(&h.Rdev, "rdev", combineDev(hdr.RDevMajor, hdr.RDevMinor))
	set32(&h.Mtime, "mtime", hdr.mtime())
	set16(&h.Namesize, "namesize", namesize)
	set32(&h.Filesize, "filesize", hdr.Size)
	if err != nil {
		return err
	}

	_, err = w.w.Write(h.Bytes())
	return err
}

func (w *Writer) writeOdc(hdr *Header, namesize int64) error {
	h := codec.NewOdcHeader()

	var err error
	put := func(dst []byte, field string, v int64) {
		if err == nil {
			err = putDec(dst, field, v)
		}
	}

	put(h.Dev[:], "dev", combineDev(hdr.DevMajor, hdr.DevMinor))
	put(h.Ino[:], "ino", hdr.Inode)
	put(h.Mode[:], "mode", int64(hdr.Mode))
	put(h.UID[:], "uid", int64(hdr.UID))
	put(h.GID[:], "gid", int64(hdr.GID))
	put(h.Nlink[:], "nlink", int64(hdr.Links))
	put(h.Rdev[:], "rdev", combineDev(hdr.RDevMajor, hdr.RDevMinor))
	put(h.Mtime[:], "mtime", hdr.mtime())
	put(h.Namesize[:], "namesize", namesize)
	put(h.Filesize[:], "filesize", hdr.Size)
	if err != nil {
		return err
	}

	_, err = w.w.Write(h.Bytes())
	return err
}

func (w *Writer) writeNewc(hdr *Header, namesize int64) error {
	var h *codec.NewcHeader
	if w.format == FormatNewcCRC {
		h = codec.NewNewcCRCHeader()
	} else {
		h = codec.NewNewcHeader()
	}

	var err error
	put := func(dst []byte, field string, v int64) {
		if err == nil {
			err = putHex(dst, field, v)
		}
	}

	put(h.Ino[:], "ino", hdr.Inode)
	put(h.Mode[:], "mode", int64(hdr.Mode))
	put(h.UID[:], "uid", int64(hdr.UID))
	put(h.GID[:], "gid", int64(hdr.GID))
	put(h.Nlink[:], "nlink", int64(hdr.Links))
	put(h.Mtime[:], "mtime", hdr.mtime())
	put(h.Filesize[:], "filesize", hdr.Size)
	put(h.Devmajor[:], "devmajor", hdr.DevMajor)
	put(h.Devminor[:], "devminor", hdr.DevMinor)
	put(h.Rdevmajor[:], "rdevmajor", hdr.RDevMajor)
	put(h.Rdevminor[:], "rdevminor", hdr.RDevMinor)
	put(h.Namesize[:], "namesize", namesize)
	if w.format == FormatNewcCRC {
		put(h.Check[:], "check", int64(hdr.Checksum))
	}
	if err != nil {
		return err
	}

	_, err = w.w.Write(h.Bytes())
	return err
}

// putDec renders v as zero-padded decimal ASCII filling dst exactly.
func putDec(dst []byte, field string, v int64) error {
	s := strconv.FormatInt(v, 10)
	return putText(dst, field, v, s)
}

// putHex renders v as zero-padded lowercase hex ASCII filling dst exactly.
func putHex(dst []byte, field string, v int64) error {
	s := strconv.FormatInt(v, 16)
	return putText(dst, field, v, s)
}

func putText(dst []byte, field string, v int64, s string) error {
	if v < 0 || len(s) > len(dst) {
		return overflowErr(field, v)
	}
	for i := range dst {
		dst[i] = '0'
	}
	copy(dst[len(dst)-len(s):], s)
	return nil
}

func overflowErr(field string, v int64) error {
	return fmt.Errorf("%s=%d: %w", field, v, ErrFieldOverflow)
}

// combineDev packs split device numbers the way the combined-field formats
// expect.
func combineDev(major, minor int64) int64 {
	return major<<8 | minor&0xff
}

// pad is the number of zero bytes needed after n to reach the alignment.
func pad(n, align int64) int64 {
	if align <= 1 {
		return 0
	}
	return (align - n%align) % align
}
