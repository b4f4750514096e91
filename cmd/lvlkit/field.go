package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlkit/latticepath"
)

// fieldFile is the YAML layout of a field file:
//
//	rows:
//	  - "...."
//	  - ".X.."
type fieldFile struct {
	Rows []string `yaml:"rows"`
}

// loadField reads a field from path. Files ending in .yaml or .yml are
// decoded as YAML; anything else is plain text with one row per line.
// Blank lines and surrounding whitespace are ignored in plain text.
func loadField(path string) (latticepath.Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read field: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var ff fieldFile
		if err := yaml.Unmarshal(data, &ff); err != nil {
			return nil, fmt.Errorf("decode field %s: %w", path, err)
		}

		return latticepath.Field(ff.Rows), nil
	default:
		return parseTextField(data), nil
	}
}

func parseTextField(data []byte) latticepath.Field {
	var f latticepath.Field
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			f = append(f, line)
		}
	}

	return f
}
