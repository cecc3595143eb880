package transform

import (
	"github.com/facebookexperimental/object-introspection-sub001/internal/catalog"
	"github.com/facebookexperimental/object-introspection-sub001/internal/pass"
)

// PipelineConfig selects which of the ten standard passes StandardPipeline
// includes and supplies the per-pass inputs (ignore list, key-capture
// requests) that aren't derivable from the graph itself.
type PipelineConfig struct {
	// Skip names passes to omit by their pass.Pass.Name (e.g. "AddPadding"
	// when the caller doesn't need byte-exact layout).
	Skip map[string]bool

	Ignore          *IgnoreList
	KeyCaptures     []KeyCaptureRequest
	Catalog         *catalog.Catalog
}

// StandardPipeline returns the standard pass order from: Flatten,
// IdentifyContainers, RemoveMembers, TypeIdentifier, AddPadding,
// AlignmentCalc, NameGen, CycleFinder, TopoSort, Prune, with KeyCapture
// inserted right before Prune (it must run after NameGen has stabilized
// names but before Prune drops the template-parameter plumbing it reads).
// Passes named in cfg.Skip are omitted, preserving the relative order of
// the rest.
func StandardPipeline(cfg PipelineConfig) []pass.Pass {
	all := []pass.Pass{
		NewFlatten(),
		NewIdentifyContainers(cfg.Catalog),
		NewRemoveMembers(cfg.Ignore),
		NewTypeIdentifier(),
		NewAddPadding(),
		NewAlignmentCalc(),
		NewNameGen(),
		NewCycleFinder(),
		NewTopoSort(),
	}
	if len(cfg.KeyCaptures) > 0 {
		all = append(all, NewKeyCapture(cfg.Catalog, cfg.KeyCaptures))
	}
	all = append(all, NewPrune())

	if len(cfg.Skip) == 0 {
		return all
	}
	out := make([]pass.Pass, 0, len(all))
	for _, p := range all {
		if cfg.Skip[p.Name] {
			continue
		}
		out = append(out, p)
	}
	return out
}
