package frame

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewYCbCr(image.Rect(0, 0, w, h), image.YCbCrSubsampleRatio420), nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeJPEG(t *testing.T) {
	dec, err := NewDecoder(FormatJPEG)
	if err != nil {
		t.Fatal(err)
	}

	img, release, err := dec.Decode(encodeJPEG(t, 64, 48))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	defer release()

	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("unexpected bounds: %v", b)
	}
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 16, 16))); err != nil {
		t.Fatal(err)
	}

	dec, err := NewDecoder(FormatPNG)
	if err != nil {
		t.Fatal(err)
	}
	img, release, err := dec.Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	defer release()

	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("unexpected bounds: %v", b)
	}
}

func TestDecodeGarbage(t *testing.T) {
	dec, err := NewDecoder(FormatJPEG)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := dec.Decode([]byte{1, 2, 3, 4}); err == nil {
		t.Fatal("expected an error for garbage input")
	}
}

func TestNewDecoderUnsupported(t *testing.T) {
	if _, err := NewDecoder(Format("NEF")); err == nil {
		t.Fatal("expected an error for unsupported format")
	}
}

func TestFromMIME(t *testing.T) {
	cases := []struct {
		mime string
		want Format
		ok   bool
	}{
		{"image/jpeg", FormatJPEG, true},
		{"image/jpg", FormatJPEG, true},
		{"image/png", FormatPNG, true},
		{"image/x-canon-cr2", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := FromMIME(c.mime)
		if got != c.want || ok != c.ok {
			t.Errorf("FromMIME(%q) = %q, %v, want %q, %v", c.mime, got, ok, c.want, c.ok)
		}
	}
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 640, 480))

	scaled := Scale(src, 320, 320)
	if b := scaled.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("unexpected scaled bounds: %v", b)
	}

	// Already fits, must come back untouched.
	if got := Scale(src, 640, 480); got != src {
		t.Fatal("expected the original image back")
	}
}
