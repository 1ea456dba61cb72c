// SPDX-License-Identifier: EPL-2.0

// Package host is a minimal render clock for capture processors.
//
// Processors are registered under a well-known name with a Registry and
// instantiated by a Host, which invokes every live processor once per tick
// with that tick's input buses. A processor that returns false from Process
// is retired and never invoked again.
//
//	reg := host.NewRegistry()
//	_ = processor.Register(reg, out)
//	h := host.New(reg, logger)
//	_, _ = h.Attach(processor.Name)
//	h.Process(inputs) // once per tick
package host
