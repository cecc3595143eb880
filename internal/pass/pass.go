package pass

import (
	"context"
	"errors"
	"fmt"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// ErrCycleUnhandled is returned when a pass recurses through an unbroken
// cycle without consulting a NodeTracker, the PassCycleUnhandled kind of
// Passes built on RecursiveVisitor/RecursiveMutator can't trigger
// this (their Tracker/memo always guards), and no pass in package transform
// returns it: CycleFinder reports ErrUnbreakableCycle and TopoSort reports
// ErrBadGraph.
var ErrCycleUnhandled = errors.New("pass: recursed through unbroken cycle without a tracker")

// Pass is a named transformation over a TypeGraph. Run receives only the
// context and the graph; a pass that needs a NodeTracker builds its own
// inside Run, so passes don't share tracker state with each other.
type Pass struct {
	Name string
	Run  func(ctx context.Context, g *graph.TypeGraph) error
}

var (
	meter           = otel.Meter("object-introspection/pass")
	passCounter, _  = meter.Int64Counter("pass.runs", metric.WithDescription("number of pass executions"))
	passNodeGauge, _ = meter.Int64Histogram("pass.node_count", metric.WithDescription("node count after each pass"))
)

// Logger is the minimal structured-logging surface Manager needs; it is
// satisfied by goa.design/clue/log's package-level functions via the
// clueLogger adapter in cmd/oigen, keeping this package free of a direct
// dependency on any particular context-logging convention.
type Logger interface {
	Log(ctx context.Context, fields map[string]any)
}

// Manager runs a fixed, ordered list of passes against a graph, logging
// each pass's name (and the node count before/after) and aborting on the
// first error: every pass is total on a well-formed graph, so a structural
// error aborts the whole pipeline rather than leaving a partial output.
type Manager struct {
	Passes []Pass
	Logger Logger
}

// NewManager returns a Manager that will run passes in the given order.
func NewManager(logger Logger, passes ...Pass) *Manager {
	return &Manager{Passes: passes, Logger: logger}
}

// Run executes every registered pass in order against g, returning the
// first error encountered (wrapped with the pass's name) and stopping
// immediately — no later pass runs once one has failed.
func (m *Manager) Run(ctx context.Context, g *graph.TypeGraph) error {
	for _, p := range m.Passes {
		before := g.NodeCount()
		if m.Logger != nil {
			m.Logger.Log(ctx, map[string]any{"pass": p.Name, "phase": "start", "nodes_before": before})
		}
		passCounter.Add(ctx, 1)
		if err := p.Run(ctx, g); err != nil {
			if m.Logger != nil {
				m.Logger.Log(ctx, map[string]any{"pass": p.Name, "phase": "error", "error": err.Error()})
			}
			return fmt.Errorf("pass %q: %w", p.Name, err)
		}
		after := g.NodeCount()
		passNodeGauge.Record(ctx, int64(after))
		if m.Logger != nil {
			m.Logger.Log(ctx, map[string]any{"pass": p.Name, "phase": "done", "nodes_after": after})
		}
	}
	return nil
}
