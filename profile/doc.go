// Package profile adds optional CPU and heap profiling to the renderer CLI.
//
// Typical usage wraps command execution:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	p := cfg.NewProfiler()
//
//	err := p.Start()
//	// Render.
//	stopErr := p.Stop()
//
// Users can then enable profiling via flags like --cpu-profile=cpu.prof.
package profile
