package settings

import (
	"testing"
)

// memStore is an in-memory host.Storage for tests.
type memStore struct {
	record map[string]any
	fail   bool
}

func (m *memStore) LoadData() (map[string]any, error) {
	if m.fail {
		return nil, errFail
	}
	return m.record, nil
}

func (m *memStore) SaveData(record map[string]any) error {
	if m.fail {
		return errFail
	}
	m.record = record
	return nil
}

type failErr struct{}

func (failErr) Error() string { return "storage failure" }

var errFail = failErr{}

func TestMergeMissingRecordKeepsDefaults(t *testing.T) {
	got := merge(Defaults(), nil)
	if got != Defaults() {
		t.Fatalf("merge(defaults, nil) = %+v, want %+v", got, Defaults())
	}
}

func TestMergePersistedKeysWin(t *testing.T) {
	record := map[string]any{
		"penColor": "#ff0000",
		"penWidth": float64(12),
	}
	got := merge(Defaults(), record)

	if got.PenColor != "#ff0000" {
		t.Errorf("PenColor = %q, want #ff0000", got.PenColor)
	}
	if got.PenWidth != 12 {
		t.Errorf("PenWidth = %d, want 12", got.PenWidth)
	}
	// Keys absent from the record keep their defaults.
	if got.EraserSize != Defaults().EraserSize {
		t.Errorf("EraserSize = %d, want default %d", got.EraserSize, Defaults().EraserSize)
	}
	if got.ShowToolbar != Defaults().ShowToolbar {
		t.Errorf("ShowToolbar = %v, want default %v", got.ShowToolbar, Defaults().ShowToolbar)
	}
}

func TestMergeWrongTypedValuesFallBack(t *testing.T) {
	record := map[string]any{
		"penColor":    42,
		"penWidth":    "wide",
		"showToolbar": "yes",
	}
	got := merge(Defaults(), record)
	if got != Defaults() {
		t.Fatalf("merge with wrong-typed record = %+v, want defaults %+v", got, Defaults())
	}
}

func TestRoundTrip(t *testing.T) {
	st := &memStore{}

	s1 := NewStore(st)
	s1.SetPenColor("#123abc")
	s1.SetPenWidth(7)
	s1.SetEraserSize(40)
	s1.SetShowToolbar(false)
	if err := s1.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s2 := NewStore(st)
	if err := s2.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := s2.Current(), s1.Current(); got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestSavePreservesUnrelatedRecordKeys(t *testing.T) {
	st := &memStore{record: map[string]any{
		"drawing":   "data:image/png;base64,xyz",
		"timestamp": float64(12345),
	}}

	s := NewStore(st)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	s.SetPenWidth(9)
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if st.record["drawing"] != "data:image/png;base64,xyz" {
		t.Errorf("snapshot key clobbered by settings save: %v", st.record["drawing"])
	}
	if st.record["penWidth"] != 9 {
		t.Errorf("penWidth = %v, want 9", st.record["penWidth"])
	}
}

func TestLoadErrorLeavesDefaults(t *testing.T) {
	s := NewStore(&memStore{fail: true})
	if err := s.Load(); err == nil {
		t.Fatal("Load on failing storage: want error")
	}
	if s.Current() != Defaults() {
		t.Fatalf("Current after failed load = %+v, want defaults", s.Current())
	}
}
