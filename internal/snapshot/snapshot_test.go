package snapshot

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"time"
)

// memStore is an in-memory host.Storage for tests.
type memStore struct {
	record map[string]any
}

func (m *memStore) LoadData() (map[string]any, error) { return m.record, nil }

func (m *memStore) SaveData(record map[string]any) error {
	m.record = record
	return nil
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	img.SetRGBA(5, 5, color.RGBA{R: 255, A: 255})
	img.SetRGBA(12, 3, color.RGBA{B: 255, A: 255})
	return img
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := testImage()

	uri, err := Encode(src)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("Encode prefix = %q", uri[:min(len(uri), 30)])
	}

	img, err := Decode(uri)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", img.Bounds(), src.Bounds())
	}
	r, _, _, a := img.At(5, 5).RGBA()
	if r != 0xffff || a != 0xffff {
		t.Errorf("pixel(5,5) = r%04x a%04x, want opaque red", r, a)
	}
}

func TestDecodeRejectsNonDataURI(t *testing.T) {
	if _, err := Decode("https://example.com/x.png"); err == nil {
		t.Error("Decode(url): want error")
	}
	if _, err := Decode("data:image/png;base64,!!!"); err == nil {
		t.Error("Decode(bad base64): want error")
	}
}

func TestSaveIsIdempotentForIdenticalPixels(t *testing.T) {
	st := &memStore{}
	store := NewStore(st)
	img := testImage()

	first, err := store.Save(img)
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second, err := store.Save(img)
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}

	// Timestamps may differ; the encoded payload must not.
	if first.Drawing != second.Drawing {
		t.Error("identical pixels encoded to different payloads")
	}
}

func TestLoadReturnsNilOnFirstRun(t *testing.T) {
	store := NewStore(&memStore{})
	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap != nil {
		t.Fatalf("Load on first run = %+v, want nil", snap)
	}
}

func TestClearErasesSnapshot(t *testing.T) {
	st := &memStore{}
	store := NewStore(st)

	if _, err := store.Save(testImage()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap != nil {
		t.Fatalf("Load after Clear = %+v, want nil", snap)
	}
}

func TestSavePreservesSettingsKeys(t *testing.T) {
	st := &memStore{record: map[string]any{"penColor": "#112233", "penWidth": float64(4)}}
	store := NewStore(st)

	if _, err := store.Save(testImage()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if st.record["penColor"] != "#112233" {
		t.Errorf("penColor clobbered by snapshot save: %v", st.record["penColor"])
	}
}

func TestSaveStampsTimestamp(t *testing.T) {
	st := &memStore{}
	store := NewStore(st)
	fixed := time.UnixMilli(1712345678901)
	store.now = func() time.Time { return fixed }

	snap, err := store.Save(testImage())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if snap.Timestamp != fixed.UnixMilli() {
		t.Errorf("Timestamp = %d, want %d", snap.Timestamp, fixed.UnixMilli())
	}
}
