// Package testdirs creates disposable directory fixtures from declarative
// trees.
//
// A fixture is described with the tree package and written to a fresh
// directory by a Factory:
//
//	fixture := testdirs.NewT(t, tree.New().
//	    Set("go.mod", tree.Text("module example.com/x\n")).
//	    Set("cmd/main.go", tree.Text("package main\n")).
//	    Set("bin/run.sh", tree.MustWithMode(tree.Text("#!/bin/sh\n"), 0o755)))
//
//	data, err := os.ReadFile(fixture.Join("go.mod"))
//
// Directories are created under Options.Root with a random name (prefixed
// by Options.Prefix) unless WithDirname picks one. NewT releases the
// fixture when the test ends; New and Factory.Create leave that to the
// caller through Fixture.Release.
//
// # Configuration
//
// Settings come from functional options, optionally seeded from a YAML file:
//
//	opts, err := testdirs.LoadOptions(billy.NewLocal(), "testdirs.yaml")
//	factory, err := testdirs.NewFactory(testdirs.WithOptions(opts))
//
// Every factory validates its settings against an embedded CUE schema.
// Invalid settings, and a dirname escaping the root without
// WithAllowOutside, fail with errors.CodeInvalidConfig.
//
// # Hooks and logging
//
// WithBeforeHook and WithAfterHook run caller code around materialization.
// A failing hook aborts creation with errors.CodeHookFailed and the
// directory is removed. Lifecycle events are logged at debug level to the
// logger set with WithLogger.
package testdirs
