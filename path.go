package subraster

import "github.com/maxgubler/subraster/internal/path"

// Path is the vertex store a caller builds before rasterizing: a
// sequence of MoveTo/LineTo/CurveTo/BSplineTo/BSplinePatchTo commands
// in 1/8-pixel native units.
type Path = path.Path

// NewPath returns an empty Path ready for appending.
func NewPath() *Path {
	return path.New()
}
