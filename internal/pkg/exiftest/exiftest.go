// Package exiftest writes small image fixtures, optionally carrying an EXIF block.
package exiftest

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

const (
	typeShort    = 3
	typeLong     = 4
	typeASCII    = 2
	typeRational = 5

	tagImageDescription = 0x010E
	tagModel            = 0x0110
	tagDateTime         = 0x0132
	tagExifIFD          = 0x8769
	tagGPSIFD           = 0x8825
	tagExposureTime     = 0x829A
	tagFNumber          = 0x829D
	tagISO              = 0x8827
	tagDateTimeOriginal = 0x9003
	tagFocalLength      = 0x920A
	tagFocalLength35    = 0xA405
	tagLensModel        = 0xA434
)

type Rational struct {
	Num, Den uint32
}

// Fields lists the tags to embed. Zero values are left out.
type Fields struct {
	Model         string
	LensModel     string
	Description   string
	TakenAt       time.Time
	FNumber       Rational
	ExposureTime  Rational
	FocalLength   Rational
	FocalLength35 uint16
	ISO           uint16
	// GPSIFDOffset, when set, adds a GPS sub-IFD pointer to IFD0 with this
	// offset as is. An offset past the end of the block makes the pointer dangle.
	GPSIFDOffset uint32
}

// WriteJPEG writes a width x height JPEG to dir/name and returns its path.
// When fields is non-nil an EXIF APP1 segment is inserted right after SOI.
func WriteJPEG(t *testing.T, dir, name string, width, height int, fields *Fields) string {
	t.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, solid(width, height), &jpeg.Options{Quality: 80}); err != nil {
		t.Fatalf("encoding jpeg: %v", err)
	}

	data := buf.Bytes()
	if fields != nil {
		app1 := segment(fields.tiff())
		out := make([]byte, 0, len(data)+len(app1))
		out = append(out, data[:2]...)
		out = append(out, app1...)
		out = append(out, data[2:]...)
		data = out
	}

	return write(t, dir, name, data)
}

// WritePNG writes a width x height PNG to dir/name and returns its path.
func WritePNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(width, height)); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return write(t, dir, name, buf.Bytes())
}

// SetModTime sets both access and modification time of path.
func SetModTime(t *testing.T, path string, mt time.Time) {
	t.Helper()
	if err := os.Chtimes(path, mt, mt); err != nil {
		t.Fatalf("setting mtime: %v", err)
	}
}

func write(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func solid(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := color.RGBA{R: 120, G: 140, B: 160, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func segment(tiffData []byte) []byte {
	payload := append([]byte("Exif\x00\x00"), tiffData...)
	seg := []byte{0xFF, 0xE1, 0, 0}
	binary.BigEndian.PutUint16(seg[2:], uint16(len(payload)+2))
	return append(seg, payload...)
}

type entry struct {
	tag   uint16
	typ   uint16
	count uint32
	data  []byte
}

func (f *Fields) tiff() []byte {
	var ifd0, exifIFD []entry

	if f.Description != "" {
		ifd0 = append(ifd0, ascii(tagImageDescription, f.Description))
	}
	if f.Model != "" {
		ifd0 = append(ifd0, ascii(tagModel, f.Model))
	}
	if !f.TakenAt.IsZero() {
		stamp := f.TakenAt.UTC().Format("2006:01:02 15:04:05")
		ifd0 = append(ifd0, ascii(tagDateTime, stamp))
		exifIFD = append(exifIFD, ascii(tagDateTimeOriginal, stamp))
	}
	if f.ExposureTime.Den != 0 {
		exifIFD = append(exifIFD, rational(tagExposureTime, f.ExposureTime))
	}
	if f.FNumber.Den != 0 {
		exifIFD = append(exifIFD, rational(tagFNumber, f.FNumber))
	}
	if f.ISO != 0 {
		exifIFD = append(exifIFD, short(tagISO, f.ISO))
	}
	if f.FocalLength.Den != 0 {
		exifIFD = append(exifIFD, rational(tagFocalLength, f.FocalLength))
	}
	if f.FocalLength35 != 0 {
		exifIFD = append(exifIFD, short(tagFocalLength35, f.FocalLength35))
	}
	if f.LensModel != "" {
		exifIFD = append(exifIFD, ascii(tagLensModel, f.LensModel))
	}

	if f.GPSIFDOffset != 0 {
		data := make([]byte, 4)
		binary.LittleEndian.PutUint32(data, f.GPSIFDOffset)
		ifd0 = append(ifd0, entry{tag: tagGPSIFD, typ: typeLong, count: 1, data: data})
	}

	const ifd0Offset = 8
	if len(exifIFD) > 0 {
		// placeholder, patched once the IFD0 size is known
		ifd0 = append(ifd0, entry{tag: tagExifIFD, typ: typeLong, count: 1, data: make([]byte, 4)})
	}
	sortEntries(ifd0)
	sortEntries(exifIFD)

	exifOffset := uint32(ifd0Offset + ifdSize(ifd0))
	for i := range ifd0 {
		if ifd0[i].tag == tagExifIFD {
			binary.LittleEndian.PutUint32(ifd0[i].data, exifOffset)
		}
	}

	out := []byte{'I', 'I', 42, 0, ifd0Offset, 0, 0, 0}
	out = append(out, encodeIFD(ifd0, ifd0Offset)...)
	if len(exifIFD) > 0 {
		out = append(out, encodeIFD(exifIFD, exifOffset)...)
	}
	return out
}

func ascii(tag uint16, s string) entry {
	data := append([]byte(s), 0)
	return entry{tag: tag, typ: typeASCII, count: uint32(len(data)), data: data}
}

func short(tag uint16, v uint16) entry {
	data := make([]byte, 2)
	binary.LittleEndian.PutUint16(data, v)
	return entry{tag: tag, typ: typeShort, count: 1, data: data}
}

func rational(tag uint16, r Rational) entry {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data, r.Num)
	binary.LittleEndian.PutUint32(data[4:], r.Den)
	return entry{tag: tag, typ: typeRational, count: 1, data: data}
}

func sortEntries(entries []entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].tag < entries[j].tag })
}

func ifdSize(entries []entry) int {
	size := 2 + 12*len(entries) + 4
	for _, e := range entries {
		if len(e.data) > 4 {
			size += len(e.data) + len(e.data)%2
		}
	}
	return size
}

func encodeIFD(entries []entry, offset uint32) []byte {
	head := make([]byte, 0, 2+12*len(entries)+4)
	var extra []byte
	dataOffset := offset + uint32(2+12*len(entries)+4)

	head = binary.LittleEndian.AppendUint16(head, uint16(len(entries)))
	for _, e := range entries {
		head = binary.LittleEndian.AppendUint16(head, e.tag)
		head = binary.LittleEndian.AppendUint16(head, e.typ)
		head = binary.LittleEndian.AppendUint32(head, e.count)
		if len(e.data) <= 4 {
			val := make([]byte, 4)
			copy(val, e.data)
			head = append(head, val...)
			continue
		}
		head = binary.LittleEndian.AppendUint32(head, dataOffset+uint32(len(extra)))
		extra = append(extra, e.data...)
		if len(e.data)%2 == 1 {
			extra = append(extra, 0)
		}
	}
	head = binary.LittleEndian.AppendUint32(head, 0)

	return append(head, extra...)
}
