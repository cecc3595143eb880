package emitter

import "github.com/facebookexperimental/object-introspection-sub001/internal/graph"

type polyChildData struct {
	VMin, VMax uint64
	Index      int
	TypeRef    string
}

type polyDispatchData struct {
	BaseRef  string
	Children []polyChildData
}

// buildPolyDispatch emits the vptr-range dispatch handler for a polymorphic
// base class. A child absent from opts.VTableRanges can never
// match its range test, so it silently falls through to the base's own
// concrete handler per the "otherwise write -1" branch — that fallback
// already covers it, rather than this function erroring.
func (e *Emitter) buildPolyDispatch(c *graph.Class) (string, error) {
	data := polyDispatchData{BaseRef: c.Name()}
	for i, child := range c.Children {
		if child.Type == nil {
			continue
		}
		rng, ok := e.opts.VTableRanges[child.Type.FullyQualifiedName]
		if !ok {
			continue
		}
		data.Children = append(data.Children, polyChildData{
			VMin: rng.Min, VMax: rng.Max, Index: i, TypeRef: child.Type.Name(),
		})
	}
	return emitterTemplates.Render(polyDispatchT, data)
}
