package bcodec

import "testing"

func TestDecodeUintLittle(t *testing.T) {
	got := DecodeUint(Little, []byte{0x01, 0x02})
	if got != 0x0201 {
		t.Fatalf("got %#x, want %#x", got, 0x0201)
	}
}

func TestDecodeUintBig(t *testing.T) {
	got := DecodeUint(Big, []byte{0x01, 0x02})
	if got != 0x0102 {
		t.Fatalf("got %#x, want %#x", got, 0x0102)
	}
}

func TestDecodeUintWidensHighBit(t *testing.T) {
	got := DecodeUint(Little, []byte{0, 0, 0, 0, 0, 0, 0, 0x80})
	if got >= 0 {
		t.Fatalf("expected negative widened value, got %d", got)
	}
}

func TestDecodeSintNegative(t *testing.T) {
	got := DecodeSint(Little, []byte{0xff})
	if got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}

func TestDecodeSintPositive(t *testing.T) {
	got := DecodeSint(Little, []byte{0x7f})
	if got != 127 {
		t.Fatalf("got %d, want 127", got)
	}
}

func TestDecodeSintWidth2(t *testing.T) {
	got := DecodeSint(Big, []byte{0xff, 0xfe})
	if got != -2 {
		t.Fatalf("got %d, want -2", got)
	}
}

func TestEncodeDecodeUintRoundTrip(t *testing.T) {
	b := EncodeUint(Little, 0x0102030405060708, 8)
	got := DecodeUint(Little, b)
	if uint64(got) != 0x0102030405060708 {
		t.Fatalf("got %#x, want %#x", uint64(got), uint64(0x0102030405060708))
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	b := EncodeFloat32(Big, 3.5)
	got := DecodeFloat32(Big, b)
	if got != 3.5 {
		t.Fatalf("got %v, want 3.5", got)
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	b := EncodeFloat64(Little, -2.25)
	got := DecodeFloat64(Little, b)
	if got != -2.25 {
		t.Fatalf("got %v, want -2.25", got)
	}
}

func TestDecodeUintPanicsOnBadWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unsupported width")
		}
	}()
	DecodeUint(Little, []byte{1, 2, 3})
}
