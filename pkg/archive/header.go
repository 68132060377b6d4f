package archive

import (
	"fmt"
	"io/fs"
	"os"
	"time"
)

// FileMode is an entry's mode and type bits as cpio stores them: the
// traditional Unix S_IF* type mask over the permission bits.
type FileMode int64

const (
	ModeType FileMode = 0o170000 // mask for the type bits

	ModeNamedPipe FileMode = 0o010000
	ModeChar      FileMode = 0o020000
	ModeDir       FileMode = 0o040000
	ModeBlock     FileMode = 0o060000
	ModeRegular   FileMode = 0o100000
	ModeSymlink   FileMode = 0o120000
	ModeSocket    FileMode = 0o140000

	ModeSetuid FileMode = 0o4000
	ModeSetgid FileMode = 0o2000
	ModeSticky FileMode = 0o1000

	ModePerm FileMode = 0o777
)

// IsDir reports whether the mode describes a directory.
func (m FileMode) IsDir() bool {
	return m&ModeType == ModeDir
}

// IsRegular reports whether the mode describes a regular file.
func (m FileMode) IsRegular() bool {
	return m&ModeType == ModeRegular
}

// IsSymlink reports whether the mode describes a symbolic link.
func (m FileMode) IsSymlink() bool {
	return m&ModeType == ModeSymlink
}

// Header is the logical metadata of one archive entry. The Writer renders
// it into whichever wire format the archive uses.
//
// Device numbers are held split; formats that store a combined device
// number pack them as major<<8|minor.
type Header struct {
	Name      string    // pathname of the entry within the archive
	Linkname  string    // target of a symbolic link
	Inode     int64     // inode number
	Mode      FileMode  // type and permission bits
	UID       int       // owning user id
	GID       int       // owning group id
	Links     int       // link count; directories carry at least 2
	ModTime   time.Time // modification time, second precision on the wire
	Size      int64     // data byte count following the pathname
	DevMajor  int64     // device the entry resides on
	DevMinor  int64
	RDevMajor int64 // device described by a char/block special entry
	RDevMinor int64
	Checksum  uint32 // byte sum of the data; used by the newc-crc format
}

// FileInfoHeader builds a Header from filesystem metadata. If fi describes
// a symbolic link, link must hold its target.
//
// Ownership and device fields are left zero so that archives are
// reproducible across hosts; callers that need them set the fields before
// writing.
func FileInfoHeader(fi os.FileInfo, link string) (*Header, error) {
	if fi == nil {
		return nil, fmt.Errorf("archive: nil FileInfo")
	}

	h := &Header{
		Name:    fi.Name(),
		ModTime: fi.ModTime(),
		Mode:    FileMode(fi.Mode().Perm()),
		Links:   1,
	}

	mode := fi.Mode()
	switch {
	case mode.IsRegular():
		h.Mode |= ModeRegular
		h.Size = fi.Size()
	case mode.IsDir():
		h.Mode |= ModeDir
		h.Links = 2
	case mode&fs.ModeSymlink != 0:
		h.Mode |= ModeSymlink
		h.Linkname = link
		h.Size = int64(len(link))
	case mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice != 0:
		h.Mode |= ModeChar
	case mode&fs.ModeDevice != 0:
		h.Mode |= ModeBlock
	case mode&fs.ModeNamedPipe != 0:
		h.Mode |= ModeNamedPipe
	case mode&fs.ModeSocket != 0:
		h.Mode |= ModeSocket
	default:
		return nil, fmt.Errorf("archive: unsupported file mode %v", mode)
	}

	if mode&fs.ModeSetuid != 0 {
		h.Mode |= ModeSetuid
	}
	if mode&fs.ModeSetgid != 0 {
		h.Mode |= ModeSetgid
	}
	if mode&fs.ModeSticky != 0 {
		h.Mode |= ModeSticky
	}

	return h, nil
}

// mtime is the header's modification time as Unix seconds, with the zero
// time mapping to 0 rather than a negative epoch offset.
func (h *Header) mtime() int64 {
	if h.ModTime.IsZero() {
		return 0
	}
	return h.ModTime.Unix()
}
