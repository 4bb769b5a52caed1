package arrange

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCatalogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrangements.txt")
	want := []Arrangement{
		{Name: "test_sprite", Width: 2, Height: 2, TileIndices: []int{0, 1, 4, 5}},
		{Name: "other_sprite", Width: 3, Height: 2, TileIndices: []int{2, 3, 6, 7, 8, 9}},
		{Name: "single_tile", Width: 1, Height: 1, TileIndices: []int{15}},
	}

	if err := SaveCatalog(path, want); err != nil {
		t.Fatalf("SaveCatalog: %v", err)
	}
	got, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestSaveCatalog_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrangements.txt")
	arrs := []Arrangement{{Name: "hero", Width: 2, Height: 2, TileIndices: []int{0, 1, 4, 5}}}

	if err := SaveCatalog(path, arrs); err != nil {
		t.Fatalf("SaveCatalog: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if string(b) != "hero|2,2|0,1,4,5\n" {
		t.Errorf("manifest bytes %q, want %q", b, "hero|2,2|0,1,4,5\n")
	}
}

func TestSaveCatalog_RejectsDelimiterNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrangements.txt")
	for _, name := range []string{"bad|name", "bad,name"} {
		err := SaveCatalog(path, []Arrangement{{Name: name, Width: 1, Height: 1}})
		if err == nil {
			t.Errorf("expected error for name %q", name)
		}
	}
}

func TestLoadCatalog_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrangements.txt")
	content := "invalid|format\ntest_sprite|2,2|0,1,4,5\ntoo|many|fields|here\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	arrs, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(arrs) != 1 {
		t.Fatalf("expected 1 valid record, got %d", len(arrs))
	}
	if arrs[0].Name != "test_sprite" || arrs[0].Width != 2 || arrs[0].Height != 2 {
		t.Errorf("unexpected record: %+v", arrs[0])
	}
}

func TestLoadCatalog_SkipsUnparseableNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrangements.txt")
	content := "bad_dims|x,2|0,1\nbad_index|2,2|0,one\ngood|1,1|3\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	arrs, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(arrs) != 1 || arrs[0].Name != "good" {
		t.Errorf("expected only the good record, got %+v", arrs)
	}
}

func TestLoadCatalog_EmptyIndexList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrangements.txt")
	if err := os.WriteFile(path, []byte("empty|2,2|\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	arrs, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(arrs) != 1 || len(arrs[0].TileIndices) != 0 {
		t.Errorf("expected one record without indices, got %+v", arrs)
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing manifest")
	}
}
