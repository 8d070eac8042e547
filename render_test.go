package dbin

import "testing"

func TestRenderBytesAndSeq(t *testing.T) {
	got := Render(RSeq(RBytes([]byte{1, 2}), RU8(3)))
	want := []byte{1, 2, 3}
	if string(got) != string(want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestRenderCStrAppendsTerminator(t *testing.T) {
	got := Render(RCStr("hi"))
	want := []byte{'h', 'i', 0}
	if string(got) != string(want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestRenderLeVsBeOrdering(t *testing.T) {
	le := Render(RLeU32(0x01020304))
	be := Render(RBeU32(0x01020304))
	wantLe := []byte{0x04, 0x03, 0x02, 0x01}
	wantBe := []byte{0x01, 0x02, 0x03, 0x04}
	if string(le) != string(wantLe) {
		t.Fatalf("le: got % x, want % x", le, wantLe)
	}
	if string(be) != string(wantBe) {
		t.Fatalf("be: got % x, want % x", be, wantBe)
	}
}

func TestRenderFloatRoundTripViaParse(t *testing.T) {
	bs := Render(RBeF32(-1.5))
	v, err := Parse(BeF32, bs)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	got, _ := v.Float()
	if got != -1.5 {
		t.Fatalf("got %v, want -1.5", got)
	}
}
