package archive

import "hash"

// NewHash returns the checksum used by the newc-crc format: the sum of all
// data bytes, truncated to 32 bits.
func NewHash() hash.Hash32 {
	return &digest{}
}

type digest struct {
	sum uint32
}

func (d *digest) Write(p []byte) (int, error) {
	for _, b := range p {
		d.sum += uint32(b)
	}
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	return append(b,
		byte(d.sum>>24),
		byte(d.sum>>16),
		byte(d.sum>>8),
		byte(d.sum),
	)
}

func (d *digest) Sum32() uint32 {
	return d.sum
}

func (d *digest) Reset() {
	d.sum = 0
}

func (d *digest) Size() int {
	return 4
}

func (d *digest) BlockSize() int {
	return 1
}
