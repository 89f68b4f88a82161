package psf

import "os"
import "bytes"
import "errors"
import "io/fs"
import "testing"
import "path/filepath"
import "encoding/binary"

func makePSF1(mode, charSize byte) []byte {
	glyphCount := 256
	if mode & psf1Mode512 != 0 { glyphCount = 512 }
	data := make([]byte, psf1HeaderSize + glyphCount*int(charSize))
	data[0], data[1], data[2], data[3] = psf1Magic0, psf1Magic1, mode, charSize
	return data
}

func makePSF2(glyphCount, width, height uint32) []byte {
	charSize := uint32(RowBytes(int(width)))*height
	data := make([]byte, psf2HeaderSize + int(glyphCount*charSize))
	data[0], data[1], data[2], data[3] = 0x72, 0xB5, 0x4A, 0x86
	binary.LittleEndian.PutUint32(data[ 8 : 12], psf2HeaderSize)
	binary.LittleEndian.PutUint32(data[16 : 20], glyphCount)
	binary.LittleEndian.PutUint32(data[20 : 24], charSize)
	binary.LittleEndian.PutUint32(data[24 : 28], height)
	binary.LittleEndian.PutUint32(data[28 : 32], width)
	return data
}

func TestParsePSF1(t *testing.T) {
	font, err := Parse(makePSF1(0, 16))
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if font.GlyphCount() != 256 { t.Fatalf("expected 256 glyphs, got %d", font.GlyphCount()) }
	if font.Width() != 8 { t.Fatalf("expected width 8, got %d", font.Width()) }
	if font.Height() != 16 { t.Fatalf("expected height 16, got %d", font.Height()) }
	if font.BytesPerGlyph() != 16 { t.Fatalf("expected 16 bytes per glyph, got %d", font.BytesPerGlyph()) }
}

func TestParsePSF1Mode512(t *testing.T) {
	font, err := Parse(makePSF1(psf1Mode512, 8))
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if font.GlyphCount() != 512 { t.Fatalf("expected 512 glyphs, got %d", font.GlyphCount()) }
}

func TestParsePSF1Truncated(t *testing.T) {
	data := makePSF1(0, 16)
	_, err := Parse(data[ : len(data) - 1])
	if !errors.Is(err, ErrTruncated) { t.Fatalf("expected ErrTruncated, got %v", err) }
	_, err = Parse([]byte{ psf1Magic0, psf1Magic1, 0 }) // shorter than the header itself
	if !errors.Is(err, ErrTruncated) { t.Fatalf("expected ErrTruncated, got %v", err) }
}

func TestParsePSF2(t *testing.T) {
	font, err := Parse(makePSF2(96, 10, 20))
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if font.GlyphCount() != 96 { t.Fatalf("expected 96 glyphs, got %d", font.GlyphCount()) }
	if font.Width() != 10 || font.Height() != 20 { t.Fatal("glyph size mismatch") }
	if font.BytesPerGlyph() != 40 { t.Fatalf("expected 40 bytes per glyph, got %d", font.BytesPerGlyph()) }
}

func TestParsePSF2Truncated(t *testing.T) {
	data := makePSF2(96, 8, 16)
	_, err := Parse(data[ : len(data) - 1])
	if !errors.Is(err, ErrTruncated) { t.Fatalf("expected ErrTruncated, got %v", err) }

	// header declaring more glyphs than the file contains
	binary.LittleEndian.PutUint32(data[16 : 20], 5000)
	_, err = Parse(data)
	if !errors.Is(err, ErrTruncated) { t.Fatalf("expected ErrTruncated, got %v", err) }

	// header size beyond the end of the file
	data = makePSF2(1, 8, 1)
	binary.LittleEndian.PutUint32(data[8 : 12], uint32(len(data) + 1))
	if _, err := Parse(data); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestParsePSF2Version(t *testing.T) {
	data := makePSF2(1, 8, 1)
	binary.LittleEndian.PutUint32(data[4 : 8], 1)
	_, err := Parse(data)
	if !errors.Is(err, ErrVersion) { t.Fatalf("expected ErrVersion, got %v", err) }
}

func TestParseBadMagic(t *testing.T) {
	for _, data := range [][]byte{ nil, { 0x36 }, { 0x13, 0x37 }, []byte("definitely not a font") } {
		if _, err := Parse(data); !errors.Is(err, ErrBadMagic) {
			t.Fatalf("expected ErrBadMagic for %v, got %v", data, err)
		}
	}
}

func TestGlyphView(t *testing.T) {
	data := makePSF1(0, 2)
	data[psf1HeaderSize + 'A'*2 + 0] = 0xAB
	data[psf1HeaderSize + 'A'*2 + 1] = 0xCD
	font, err := Parse(data)
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	bitmap := font.Glyph('A')
	if len(bitmap) != 2 { t.Fatalf("expected 2-byte glyph view, got %d bytes", len(bitmap)) }
	if bitmap[0] != 0xAB || bitmap[1] != 0xCD { t.Fatal("glyph view contents mismatch") }
	if font.Glyph(-1) != nil || font.Glyph(256) != nil {
		t.Fatal("out-of-range glyph indices must return nil")
	}
}

func TestNewSources(t *testing.T) {
	data := makePSF1(0, 4)

	font, err := New(data)
	if err != nil { t.Fatalf("unexpected error from []byte source: %s", err) }
	if font.GlyphCount() != 256 { t.Fatal("glyph count mismatch from []byte source") }

	font, err = New(bytes.NewReader(data))
	if err != nil { t.Fatalf("unexpected error from io.Reader source: %s", err) }
	if font.GlyphCount() != 256 { t.Fatal("glyph count mismatch from io.Reader source") }

	path := filepath.Join(t.TempDir(), "test.psf")
	if err := os.WriteFile(path, data, 0o600); err != nil { t.Fatal(err) }
	font, err = New(path)
	if err != nil { t.Fatalf("unexpected error from filepath source: %s", err) }
	if font.GlyphCount() != 256 { t.Fatal("glyph count mismatch from filepath source") }

	if _, err := New(42); err == nil { t.Fatal("expected error for invalid source type") }
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.psf"))
	if !errors.Is(err, fs.ErrNotExist) { t.Fatalf("expected fs.ErrNotExist, got %v", err) }
}

func TestNewOwnsItsData(t *testing.T) {
	data := makePSF1(0, 1)
	data[psf1HeaderSize] = 0xFF
	font, err := New(data)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	data[psf1HeaderSize] = 0x00 // caller mutation must not reach the font
	if font.Glyph(0)[0] != 0xFF { t.Fatal("font must copy []byte sources") }
}

func TestRelease(t *testing.T) {
	font, err := Parse(makePSF1(0, 8))
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	font.Release()
	if font.GlyphCount() != 0 || font.Width() != 0 || font.Height() != 0 {
		t.Fatal("released font must be zeroed")
	}
	if font.Glyph(0) != nil { t.Fatal("released font must have no glyphs") }
	font.Release() // double release is a no-op
	if font.GlyphCount() != 0 { t.Fatal("double release changed the font state") }

	var nilFont *Font
	nilFont.Release() // must not panic
}
