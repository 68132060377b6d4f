package archive

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Options configures Archive.
type Options struct {
	format Format
	filter func(rel string) bool
}

// Option adjusts Options.
type Option func(*Options) error

// WithFormat selects the wire format of the produced archive. The default
// is FormatNewc.
func WithFormat(f Format) Option {
	return func(o *Options) error {
		switch f {
		case FormatNewc, FormatNewcCRC, FormatOdc, FormatOld:
			o.format = f
			return nil
		}
		return fmt.Errorf("archive: unknown format %d", f)
	}
}

// WithFilter restricts the archive to entries whose slash-separated
// relative path the filter accepts. Rejected directories are skipped
// whole.
func WithFilter(filter func(rel string) bool) Option {
	return func(o *Options) error {
		o.filter = filter
		return nil
	}
}

// Archive walks dir and writes every entry beneath it to out as a cpio
// archive, including the trailer. Entries are emitted in lexical walk
// order with sequential inode numbers, so identical trees produce
// identical archives.
//
// Regular file data is read whole per file; for the newc-crc format the
// checksum is computed over that data before the header is written.
// Symbolic links store their target as entry data and are not followed.
//
// Archive returns the number of entries written. The context cancels a
// walk between entries.
func Archive(ctx context.Context, dir string, out io.Writer, opts ...Option) (int, error) {
	o := Options{format: FormatNewc}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return 0, err
		}
	}

	fi, err := os.Stat(dir)
	if err != nil {
		return 0, fmt.Errorf("could not check path: %w", err)
	}
	if !fi.IsDir() {
		return 0, fmt.Errorf("supplied path is not a directory: %s", dir)
	}

	w := NewWriter(out, o.format)
	entries := 0

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if o.filter != nil && !o.filter(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}

		var link string
		if d.Type()&fs.ModeSymlink != 0 {
			if link, err = os.Readlink(path); err != nil {
				return err
			}
		}

		hdr, err := FileInfoHeader(fi, link)
		if err != nil {
			return err
		}
		hdr.Name = rel
		hdr.Inode = int64(entries + 1)

		var data []byte
		switch {
		case hdr.Mode.IsRegular():
			if data, err = os.ReadFile(path); err != nil {
				return err
			}
			hdr.Size = int64(len(data))
		case hdr.Mode.IsSymlink():
			data = []byte(link)
		}

		if o.format == FormatNewcCRC && hdr.Mode.IsRegular() {
			h := NewHash()
			h.Write(data)
			hdr.Checksum = h.Sum32()
		}

		if err := w.WriteHeader(hdr); err != nil {
			return fmt.Errorf("write header for %s: %w", rel, err)
		}
		if len(data) > 0 {
			if _, err := w.Write(data); err != nil {
				return fmt.Errorf("write data for %s: %w", rel, err)
			}
		}

		entries++
		return nil
	})
	if err != nil {
		return entries, err
	}

	if err := w.Close(); err != nil {
		return entries, err
	}
	return entries, nil
}
