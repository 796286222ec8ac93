package universe

import (
	"lifegrid/internal/core"
	"lifegrid/pkg/life"
)

// Registered layout names.
const (
	LayoutRandom = "random"
	LayoutEmpty  = "empty"
	LayoutGlider = "glider"
)

func init() {
	core.RegisterLayout(LayoutRandom, life.New)
	core.RegisterLayout(LayoutEmpty, func(w, h int, _ life.Source) (*life.Grid, error) {
		return life.NewEmpty(w, h)
	})
	core.RegisterLayout(LayoutGlider, func(w, h int, _ life.Source) (*life.Grid, error) {
		g, err := life.NewEmpty(w, h)
		if err != nil {
			return nil, err
		}
		if err := g.Place(life.Glider); err != nil {
			return nil, err
		}
		return g, nil
	})
}
