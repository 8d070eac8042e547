package bitmap

import (
	"testing"

	"github.com/math4tots-misc/dbin"
)

// synthesize builds a minimal, valid BMP file+DIB header pair with the
// given file size, pixel offset, and image dimensions -- there is no
// checked-in .BMP fixture in this pack, so the round-trip is exercised
// against dbin's own Renderable encoder instead.
func synthesize(fileSize, pixelOffset, width, height uint32) []byte {
	return dbin.Render(dbin.RSeq(
		dbin.RBytes([]byte{0x42, 0x4D}),
		dbin.RLeU32(int64(fileSize)),
		dbin.RLeU16(0),
		dbin.RLeU16(0),
		dbin.RLeU32(int64(pixelOffset)),
		dbin.RLeU32(40),
		dbin.RLeU32(int64(width)),
		dbin.RLeU32(int64(height)),
	))
}

func TestFileHeaderWithSynthesizedSample(t *testing.T) {
	buf := synthesize(49206, 54, 256, 64)
	v, err := dbin.Parse(FileHeader(), buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	items, _ := v.SeqValue()
	if len(items) != 5 {
		t.Fatalf("got %d fields, want 5", len(items))
	}
	size, _ := items[1].Int()
	offset, _ := items[4].Int()
	if size != 49206 || offset != 54 {
		t.Fatalf("got size=%d offset=%d, want 49206, 54", size, offset)
	}
}

func TestCombinedToMap(t *testing.T) {
	buf := synthesize(49206, 54, 256, 64)
	v, err := dbin.Parse(Combined(), buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	pairs, _ := v.SeqValue()
	want := map[string]int64{
		"FileSize":      49206,
		"PixelOffset":   54,
		"DibHeaderSize": 40,
		"WidthInPixels": 256,
		"HeightInPixels": 64,
	}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
	}
	for _, pair := range pairs {
		kv, _ := pair.SeqValue()
		name, _ := kv[0].StringValue()
		got, _ := kv[1].Int()
		expected, ok := want[name]
		if !ok {
			t.Fatalf("unexpected key %q in ToMap output", name)
		}
		if got != expected {
			t.Fatalf("%s: got %d, want %d", name, got, expected)
		}
	}
}
