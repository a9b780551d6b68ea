package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// EncodePNG renders an image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildArchive packs the already-encoded slides into a zip in order, named
// slide-1.png through slide-N.png. Member order matches slide order.
func BuildArchive(slides [][]byte) ([]byte, error) {
	if len(slides) == 0 {
		return nil, fmt.Errorf("no slides to archive")
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, data := range slides {
		w, err := zw.Create(EntryName(i))
		if err != nil {
			return nil, fmt.Errorf("create archive entry %d: %w", i+1, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("write archive entry %d: %w", i+1, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
