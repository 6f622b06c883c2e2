package gamedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// LoadFS reads and unmarshals a JSON file from fsys. Use it with os.DirFS to
// override the embedded data.
func LoadFS[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read data file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}
