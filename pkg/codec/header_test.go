package codec

import (
	"bytes"
	"testing"
)

func TestHeaderWireContract(t *testing.T) {
	testCases := []struct {
		name      string
		header    Header
		wantLen   int
		wantMagic []byte
	}{
		{
			name:      "old binary",
			header:    NewOldHeader(),
			wantLen:   OldHeaderLen,
			wantMagic: []byte{0xc7, 0x71},
		},
		{
			name:      "odc",
			header:    NewOdcHeader(),
			wantLen:   OdcHeaderLen,
			wantMagic: []byte("070707"),
		},
		{
			name:      "newc",
			header:    NewNewcHeader(),
			wantLen:   NewcHeaderLen,
			wantMagic: []byte("070701"),
		},
		{
			name:      "newc crc",
			header:    NewNewcCRCHeader(),
			wantLen:   NewcHeaderLen,
			wantMagic: []byte("070702"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.header.Bytes()

			if len(b) != tc.wantLen {
				t.Fatalf("projected length: got %d, want %d", len(b), tc.wantLen)
			}

			if !bytes.Equal(b[:len(tc.wantMagic)], tc.wantMagic) {
				t.Errorf("magic: got %x, want %x", b[:len(tc.wantMagic)], tc.wantMagic)
			}

			// Construction touches nothing but the magic.
			for i := len(tc.wantMagic); i < len(b); i++ {
				if b[i] != 0 {
					t.Errorf("byte %d: got %#x, want zero fill", i, b[i])
				}
			}
		})
	}
}

func TestNewcCRCDiffersOnlyInMagic(t *testing.T) {
	newc := NewNewcHeader().Bytes()
	crc := NewNewcCRCHeader().Bytes()

	if bytes.Equal(newc[:6], crc[:6]) {
		t.Error("newc and newc-crc magics must differ")
	}

	if !bytes.Equal(newc[6:], crc[6:]) {
		t.Error("newc and newc-crc must be identical outside the magic field")
	}
}

func TestBytesIdempotent(t *testing.T) {
	headers := []Header{
		NewOldHeader(),
		NewOdcHeader(),
		NewNewcHeader(),
		NewNewcCRCHeader(),
	}

	for _, h := range headers {
		first := append([]byte(nil), h.Bytes()...)
		if !bytes.Equal(first, h.Bytes()) {
			t.Errorf("%T: repeated projection of an unmutated header changed", h)
		}
	}
}

func TestProjectionAliasesHeader(t *testing.T) {
	h := NewOdcHeader()
	b := h.Bytes()

	copy(h.Namesize[:], "000012")

	if !bytes.Equal(b[59:65], []byte("000012")) {
		t.Errorf("byte view did not observe field mutation: got %q", b[59:65])
	}
}

func TestClone(t *testing.T) {
	t.Run("old", func(t *testing.T) {
		h := NewOldHeader()
		h.Ino = 42
		c := h.Clone()

		if !bytes.Equal(h.Bytes(), c.Bytes()) {
			t.Error("clone projects differently from original")
		}

		c.Ino = 7
		if h.Ino != 42 {
			t.Error("mutating the clone changed the original")
		}
	})

	t.Run("odc", func(t *testing.T) {
		h := NewOdcHeader()
		copy(h.UID[:], "000501")
		c := h.Clone()

		if !bytes.Equal(h.Bytes(), c.Bytes()) {
			t.Error("clone projects differently from original")
		}

		c.UID[0] = '9'
		if h.UID[0] != '0' {
			t.Error("mutating the clone changed the original")
		}
	})

	t.Run("newc", func(t *testing.T) {
		h := NewNewcCRCHeader()
		copy(h.Check[:], "0000abcd")
		c := h.Clone()

		if !bytes.Equal(h.Bytes(), c.Bytes()) {
			t.Error("clone projects differently from original")
		}
	})
}

func BenchmarkBytes(b *testing.B) {
	h := NewNewcHeader()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = h.Bytes()
	}
}
