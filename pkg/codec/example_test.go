package codec_test

import (
	"fmt"

	"github.com/bjornk/knarr/pkg/codec"
)

// ExampleHeader demonstrates treating the four formats uniformly.
func ExampleHeader() {
	headers := []codec.Header{
		codec.NewOldHeader(),
		codec.NewOdcHeader(),
		codec.NewNewcHeader(),
		codec.NewNewcCRCHeader(),
	}

	for _, h := range headers {
		fmt.Printf("%d bytes\n", len(h.Bytes()))
	}

	// Output:
	// 26 bytes
	// 76 bytes
	// 110 bytes
	// 110 bytes
}

// ExampleNewOdcHeader shows the magic stamped at construction.
func ExampleNewOdcHeader() {
	h := codec.NewOdcHeader()
	b := h.Bytes()

	fmt.Printf("magic %q\n", b[:6])
	fmt.Printf("rest zeroed: %t\n", b[6] == 0 && b[75] == 0)

	// Output:
	// magic "070707"
	// rest zeroed: true
}

// ExampleNewNewcCRCHeader shows the checksum sub-variant's distinct magic.
func ExampleNewNewcCRCHeader() {
	newc := codec.NewNewcHeader()
	crc := codec.NewNewcCRCHeader()

	fmt.Printf("newc magic %q\n", newc.Bytes()[:6])
	fmt.Printf("crc magic  %q\n", crc.Bytes()[:6])

	// Output:
	// newc magic "070701"
	// crc magic  "070702"
}
