package core

import (
	"errors"
	"fmt"
	"sort"

	"lifegrid/pkg/life"
)

// ErrUnknownLayout is returned when a layout name has no registered factory.
var ErrUnknownLayout = errors.New("unknown layout")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract hosts use to drive and draw a simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Toggler is implemented by sims that accept point edits from the host.
type Toggler interface {
	Toggle(row, col int) error
}

// Layout builds the initial grid for a universe.
type Layout func(w, h int, src life.Source) (*life.Grid, error)

var layouts = map[string]Layout{}

// RegisterLayout adds a layout factory under the provided name.
func RegisterLayout(name string, l Layout) {
	if name == "" || l == nil {
		return
	}
	layouts[name] = l
}

// LookupLayout returns the layout registered under name.
func LookupLayout(name string) (Layout, error) {
	l, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownLayout, name, LayoutNames())
	}
	return l, nil
}

// LayoutNames lists registered layouts in sorted order.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
