// Command oigen reads a type description (the JSON stand-in for compiler
// debug info) and a container catalog, runs the standard
// transform pipeline, and emits the C++ traversal source for
// the requested root type.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/facebookexperimental/object-introspection-sub001/internal/catalog"
	"github.com/facebookexperimental/object-introspection-sub001/internal/emitter"
	"github.com/facebookexperimental/object-introspection-sub001/internal/pass"
	"github.com/facebookexperimental/object-introspection-sub001/internal/transform"
	"github.com/facebookexperimental/object-introspection-sub001/internal/typedesc"
	"goa.design/clue/log"
)

// GeneratorOptions is `{ config_file_path, source_file_dump_path,
// debug_level }`, populated here by flag rather than the user-facing API the
// real system exposes in C++ (out of scope, Non-goals).
type GeneratorOptions struct {
	ConfigFilePath     string
	SourceFileDumpPath string
	DebugLevel         int
}

func main() {
	var (
		inputF      = flag.String("input", "", "path to the type description JSON (required)")
		catalogF    = flag.String("catalog", "", "path to a directory of container descriptor TOML files (required)")
		dumpSourceF = flag.String("dump-source", "", "path to write the emitted C++ source (default: stdout)")
		debugLvlF   = flag.Int("debug-level", 0, "debug verbosity (0 disables debug logs)")
		typedF      = flag.Bool("typed", false, "emit typed-data-segment handlers instead of untyped free functions")
		polyF       = flag.Bool("polymorphic", false, "emit vptr-range dispatch wrappers for polymorphic classes")
	)
	flag.Parse()

	opts := GeneratorOptions{
		ConfigFilePath:     *catalogF,
		SourceFileDumpPath: *dumpSourceF,
		DebugLevel:         *debugLvlF,
	}

	format := log.FormatJSON
	if log.IsTerminal() {
		format = log.FormatTerminal
	}
	ctx := log.Context(context.Background(), log.WithFormat(format))
	if opts.DebugLevel > 0 {
		ctx = log.Context(ctx, log.WithDebug())
	}

	if *inputF == "" || opts.ConfigFilePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(ctx, *inputF, opts, *typedF, *polyF); err != nil {
		log.Error(ctx, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, inputPath string, opts GeneratorOptions, typed, polymorphic bool) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}
	desc, err := typedesc.Parse(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", inputPath, err)
	}

	g, _, err := typedesc.Build(desc)
	if err != nil {
		return fmt.Errorf("build type graph: %w", err)
	}

	cat, err := catalog.LoadDir(opts.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("load catalog %s: %w", opts.ConfigFilePath, err)
	}

	log.Print(ctx, log.KV{K: "input", V: inputPath}, log.KV{K: "catalog", V: opts.ConfigFilePath})

	passes := transform.StandardPipeline(transform.PipelineConfig{Catalog: cat})
	mgr := pass.NewManager(clueLogger{}, passes...)
	if err := mgr.Run(ctx, g); err != nil {
		return fmt.Errorf("transform pipeline: %w", err)
	}

	mode := emitter.ModeUntyped
	if typed {
		mode = emitter.ModeTyped
	}
	em := emitter.New(emitter.Options{
		Mode:        mode,
		Polymorphic: polymorphic,
	})
	artifact, err := em.Emit(g, cat)
	if err != nil {
		return fmt.Errorf("emit: %w", err)
	}

	if opts.SourceFileDumpPath == "" {
		_, err = fmt.Println(artifact.Source)
		return err
	}
	return os.WriteFile(opts.SourceFileDumpPath, []byte(artifact.Source), 0o644)
}

// clueLogger adapts goa.design/clue/log's package-level functions to
// pass.Logger, so internal/pass stays free of a direct dependency on any
// particular context-logging convention.
type clueLogger struct{}

func (clueLogger) Log(ctx context.Context, fields map[string]any) {
	kvs := make([]log.Fielder, 0, len(fields))
	for k, v := range fields {
		kvs = append(kvs, log.KV{K: k, V: v})
	}
	log.Print(ctx, kvs...)
}
