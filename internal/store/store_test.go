package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	st, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	data, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("missing file must load as empty array, got %q", data)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	st, err := NewStore(filepath.Join(dir, "nested"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	blob := []byte(`[{"id":"t1"}]`)
	if err := st.Save(blob); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(got) != string(blob) {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestDecodeTasksCorrupt(t *testing.T) {
	var v []any
	if err := DecodeTasks([]byte("{oops"), &v); !errors.Is(err, ErrCorruptData) {
		t.Fatalf("expected ErrCorruptData, got %v", err)
	}
	if err := DecodeTasks([]byte("[]"), &v); err != nil {
		t.Fatalf("valid blob must decode: %v", err)
	}
}

func TestValidateTasks(t *testing.T) {
	cases := []struct {
		name    string
		blob    string
		wantErr bool
	}{
		{name: "empty array", blob: `[]`, wantErr: false},
		{
			name: "full record",
			blob: `[{"id":"t1","text":"x","quadrant":"I","due":null,"completed":false,"completedAt":null,"createdAt":"2024-01-15T13:00:00Z"}]`,
		},
		{
			name: "due set",
			blob: `[{"id":"t1","text":"x","quadrant":"IV","due":"2024-01-15T13:00:00Z","completed":true,"completedAt":"2024-01-15T12:00:00Z","createdAt":"2024-01-01T00:00:00Z"}]`,
		},
		{name: "not an array", blob: `{"tasks":[]}`, wantErr: true},
		{name: "bad quadrant", blob: `[{"id":"t1","text":"x","quadrant":"V","completed":false,"createdAt":"2024-01-15T13:00:00Z"}]`, wantErr: true},
		{name: "missing id", blob: `[{"text":"x","quadrant":"I","completed":false,"createdAt":"2024-01-15T13:00:00Z"}]`, wantErr: true},
		{name: "wrong completed type", blob: `[{"id":"t1","text":"x","quadrant":"I","completed":"no","createdAt":"2024-01-15T13:00:00Z"}]`, wantErr: true},
		{name: "not json", blob: `{{{`, wantErr: true},
	}

	for _, tc := range cases {
		err := ValidateTasks([]byte(tc.blob))
		if tc.wantErr && !errors.Is(err, ErrCorruptData) {
			t.Errorf("%s: expected ErrCorruptData, got %v", tc.name, err)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestPathCarriesVersion(t *testing.T) {
	st, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if filepath.Base(st.Path()) != "tasks_v1.json" {
		t.Fatalf("unexpected file name %q", st.Path())
	}
}
