package gridmap

import (
	"fmt"
	"os"
)

// LoadFile reads the map at path and parses it with NewGrid.
// A non-positive width or height is inferred from the file via Measure.
func LoadFile(path string, width, height int, opts ...Option) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridmap: reading %s: %w", path, err)
	}
	text := string(data)
	if width <= 0 || height <= 0 {
		mw, mh := Measure(text)
		if width <= 0 {
			width = mw
		}
		if height <= 0 {
			height = mh
		}
	}
	g, err := NewGrid(text, width, height, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
