// Package bitmap is a worked sample format definition built entirely out
// of the public dbin surface: the leading fields of a BMP file header and
// a BITMAPINFOHEADER, ported from the source project's own
// samples/bitmap module.
package bitmap

import "github.com/math4tots-misc/dbin"

// Key enumerates the fields this sample format stores into Scope.
type Key dbin.Key

const (
	FileSize Key = iota
	PixelOffset
	DibHeaderSize
	WidthInPixels
	HeightInPixels
)

func (k Key) String() string {
	switch k {
	case FileSize:
		return "FileSize"
	case PixelOffset:
		return "PixelOffset"
	case DibHeaderSize:
		return "DibHeaderSize"
	case WidthInPixels:
		return "WidthInPixels"
	case HeightInPixels:
		return "HeightInPixels"
	default:
		return "Key(?)"
	}
}

func dk(k Key) dbin.Key { return dbin.Key(k) }

// named converts k to a dbin.NamedKey carrying k's own String() label --
// ToMap has no way to recover that label on its own once k has been
// narrowed to a bare dbin.Key.
func named(k Key) dbin.NamedKey {
	return dbin.NamedKey{Key: dk(k), Name: k.String()}
}

// FileHeader returns a Pattern for the 14-byte BMP file header: the "BM"
// magic, the file size, two reserved u16 fields, and the pixel data
// offset.
func FileHeader() dbin.Pattern {
	return dbin.AllOf(
		dbin.Exact([]byte{0x42, 0x4D}),
		dbin.LeU32.Store(dk(FileSize)),
		dbin.LeU16, // reserved
		dbin.LeU16, // reserved
		dbin.LeU32.Store(dk(PixelOffset)),
	)
}

// DibHeader returns a Pattern for the leading fields of a BITMAPINFOHEADER:
// header size, image width, and image height. Full DIB header variants
// (BITMAPV4HEADER and later) are out of scope, matching the source
// project's own simplification.
func DibHeader() dbin.Pattern {
	return dbin.AllOf(
		dbin.LeU32.Store(dk(DibHeaderSize)),
		dbin.LeU32.Store(dk(WidthInPixels)),
		dbin.LeU32.Store(dk(HeightInPixels)),
	)
}

// Combined returns a Pattern that parses FileHeader then DibHeader in
// sequence and yields a ToMap summary of every field both headers store,
// labeled with this package's own field names, in field-declaration order.
func Combined() dbin.Pattern {
	return dbin.AllOf(FileHeader(), DibHeader()).ToMap([]dbin.NamedKey{
		named(FileSize),
		named(PixelOffset),
		named(DibHeaderSize),
		named(WidthInPixels),
		named(HeightInPixels),
	})
}
