package station

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// importFile is the on-disk layout for station imports.
//
//	stations:
//	  - uuid: 9617a958-0601-11e8-ae97-52543be04c81
//	    name: Radio Paradise
//	    url: https://stream.radioparadise.com/mp3-192
type importFile struct {
	Stations []Station `yaml:"stations"`
}

// ParseYAML decodes and validates a station list. Stations without a UUID get one.
func ParseYAML(data []byte) ([]Station, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("station: import payload is empty")
	}
	var f importFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("station: decode import: %w", err)
	}
	seen := make(map[string]bool, len(f.Stations))
	for i := range f.Stations {
		st := &f.Stations[i]
		if st.UUID == "" {
			st.UUID = New(st.Name, st.StreamURL).UUID
		}
		if err := st.Validate(); err != nil {
			return nil, fmt.Errorf("station: entry %d (%s): %w", i, st.Name, err)
		}
		if seen[st.UUID] {
			return nil, fmt.Errorf("station: entry %d: duplicate uuid %s", i, st.UUID)
		}
		seen[st.UUID] = true
	}
	return f.Stations, nil
}

// LoadYAML reads a station list from disk.
func LoadYAML(path string) ([]Station, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("station: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("station: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("station: read %s: %w", path, err)
	}
	stations, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("station: %s: %w", filepath.Clean(path), err)
	}
	return stations, nil
}
