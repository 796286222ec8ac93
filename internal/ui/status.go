package ui

import (
	"fmt"
	"strings"

	"lifegrid/internal/core"
)

// StatusLine formats the sim's run parameters, e.g.
// "life 64x64  gen 12  pop 803  seed 42  [paused]".
func StatusLine(sim core.Sim, paused bool) string {
	size := sim.Size()
	parts := []string{fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H)}
	if provider, ok := sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		for _, key := range []string{"generation", "population", "seed"} {
			if p, ok := snap.Lookup(key); ok {
				parts = append(parts, shortLabel(key)+" "+p.Value)
			}
		}
	}
	if paused {
		parts = append(parts, "[paused]")
	}
	return strings.Join(parts, "  ")
}

func shortLabel(key string) string {
	switch key {
	case "generation":
		return "gen"
	case "population":
		return "pop"
	}
	return key
}
