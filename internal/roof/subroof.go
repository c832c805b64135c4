package roof

import (
	"fmt"

	"github.com/jomsey/roof-calc/internal/units"
)

// AttachmentEdge names the wall of the parent roof a sub-roof abuts.
// Side edges run along the building length under the main slope planes;
// end edges are the gable/hip end walls.
type AttachmentEdge string

const (
	EdgeFront AttachmentEdge = "front" // side wall, along the length
	EdgeBack  AttachmentEdge = "back"  // side wall, along the length
	EdgeLeft  AttachmentEdge = "left"  // end wall, along the width
	EdgeRight AttachmentEdge = "right" // end wall, along the width
)

// ParseEdge resolves an attachment edge tag.
func ParseEdge(s string) (AttachmentEdge, error) {
	switch AttachmentEdge(s) {
	case EdgeFront, EdgeBack, EdgeLeft, EdgeRight:
		return AttachmentEdge(s), nil
	}
	return "", fmt.Errorf("%w: unknown attachment edge %q", ErrInvalidConfiguration, s)
}

// isEnd reports whether the edge is an end wall. A sub-roof on an end
// wall keeps a structurally independent ridge; one on a side wall is
// subsumed under the parent slope and contributes valleys instead.
func (e AttachmentEdge) isEnd() bool {
	return e == EdgeLeft || e == EdgeRight
}

// SubRoof attaches a roof to a wall of its parent. SectionLength and
// Width describe the sub-roof's footprint on the parent's plane, in
// meters. A SubRoof may carry its own nested sub-roofs.
type SubRoof struct {
	Name          string
	Roof          *RoofBase
	Edge          AttachmentEdge
	SectionLength float64
	Width         float64
	Children      []*SubRoof
}

// NewSubRoof validates and builds a sub-roof attachment.
func NewSubRoof(name string, r *RoofBase, edge AttachmentEdge, sectionLength, width units.Dimension) (*SubRoof, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: sub-roof %q has no roof", ErrInvalidConfiguration, name)
	}
	if _, err := ParseEdge(string(edge)); err != nil {
		return nil, err
	}
	sl := sectionLength.Meters()
	w := width.Meters()
	if sl <= 0 {
		return nil, fmt.Errorf("%w: section_length must be positive (got %s)", ErrInvalidDimension, sectionLength)
	}
	if w <= 0 {
		return nil, fmt.Errorf("%w: width must be positive (got %s)", ErrInvalidDimension, width)
	}
	return &SubRoof{
		Name:          name,
		Roof:          r,
		Edge:          edge,
		SectionLength: sl,
		Width:         w,
	}, nil
}

// Attach adds a nested sub-roof.
func (s *SubRoof) Attach(child *SubRoof) {
	s.Children = append(s.Children, child)
}

func (s *SubRoof) String() string {
	return fmt.Sprintf("%s: %gx%g on %s edge", s.Name, s.SectionLength, s.Width, s.Edge)
}
