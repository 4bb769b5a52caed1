package arrange

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SaveCatalog writes arrangements to a manifest file, one record per line:
//
//	name|W,H|i0,i1,...,iN
//
// The format has no escaping, so names containing a delimiter are rejected
// before anything is written.
func SaveCatalog(path string, arrs []Arrangement) error {
	for _, a := range arrs {
		if strings.ContainsAny(a.Name, "|,") {
			return fmt.Errorf("arrangement name %q contains a manifest delimiter", a.Name)
		}
	}
	var b strings.Builder
	for _, a := range arrs {
		b.WriteString(a.Name)
		fmt.Fprintf(&b, "|%d,%d|", a.Width, a.Height)
		for i, idx := range a.TileIndices {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(idx))
		}
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o600)
}

// LoadCatalog parses a manifest written by SaveCatalog. A missing or
// unreadable file is a hard error; individual lines that do not split into
// exactly three pipe-delimited fields, or whose numeric fields do not
// parse, are skipped so one bad record cannot take down the batch.
func LoadCatalog(path string) ([]Arrangement, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var arrs []Arrangement
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if a, ok := parseRecord(line); ok {
			arrs = append(arrs, a)
		}
	}
	return arrs, nil
}

func parseRecord(line string) (Arrangement, bool) {
	parts := strings.Split(line, "|")
	if len(parts) != 3 {
		return Arrangement{}, false
	}
	dims := strings.Split(parts[1], ",")
	if len(dims) != 2 {
		return Arrangement{}, false
	}
	w, err := strconv.Atoi(strings.TrimSpace(dims[0]))
	if err != nil {
		return Arrangement{}, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(dims[1]))
	if err != nil {
		return Arrangement{}, false
	}
	a := Arrangement{Name: parts[0], Width: w, Height: h}
	if field := strings.TrimSpace(parts[2]); field != "" {
		for _, s := range strings.Split(field, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return Arrangement{}, false
			}
			a.TileIndices = append(a.TileIndices, n)
		}
	}
	return a, true
}
