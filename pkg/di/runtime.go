// Package di wires farmops commands to their dependencies with samber/do.
//
// Each command invocation gets a fresh injector: the runtime's base modules register
// the default providers, and callers (usually tests) can pass extra modules that
// override them.
package di

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the dependency container handed to command handlers.
type Injector = do.Injector

// Module registers providers on an injector.
type Module func(Injector) error

// Runtime holds the base modules applied to every invocation.
type Runtime struct {
	modules []Module
}

// New returns a runtime with the given base modules. Nil modules are ignored.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke builds an injector from the base modules followed by extra, then calls handler.
// A module error is returned as is and handler is not called.
func (r *Runtime) Invoke(handler func(Injector) error, extra ...Module) error {
	injector := do.New()

	for _, module := range append(append([]Module{}, r.modules...), extra...) {
		if module == nil {
			continue
		}

		err := module(injector)
		if err != nil {
			return err
		}
	}

	return handler(injector)
}

// RunEWithRuntime adapts a handler that needs an injector to a cobra RunE.
func RunEWithRuntime(
	runtime *Runtime,
	handler func(cmd *cobra.Command, args []string, injector Injector) error,
	extra ...Module,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, args, injector)
		}, extra...)
	}
}
