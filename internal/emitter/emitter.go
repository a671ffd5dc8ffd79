// Package emitter assembles the ordered link plan: translated external
// flags, the fixed in-tree search paths and static components, then the
// trailing external libraries. The sequence is the contract; static
// components must precede the libraries they depend on, per linker
// symbol-resolution rules.
package emitter

import (
	"path/filepath"

	"github.com/eugenenazirov/linkplan/internal/layout"
	"github.com/eugenenazirov/linkplan/internal/settings"
	"github.com/eugenenazirov/linkplan/internal/translator"
)

// Plan is the ordered directive sequence consumed by the downstream linker.
type Plan []translator.Directive

// Emitter builds a Plan from a settings map.
type Emitter struct {
	translator         translator.Translator
	preserveDuplicates bool
}

// Option configures Emitter behaviour.
type Option func(*Emitter)

// WithPreserveDuplicatePaths keeps the doubled in-tree search path emitted
// by the original generator instead of collapsing it, for builds that need
// byte-identical output.
func WithPreserveDuplicatePaths(preserve bool) Option {
	return func(e *Emitter) {
		e.preserveDuplicates = preserve
	}
}

// New constructs an Emitter with a default flag translator.
func New(opts ...Option) *Emitter {
	e := &Emitter{translator: translator.New()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit produces the full directive sequence from cfg. Every required setting
// must be present; a missing one returns a MissingSettingError and no plan.
//
// The step order is fixed. Do not reorder without re-verifying native linker
// dependency resolution.
func (e *Emitter) Emit(cfg settings.Map) (Plan, error) {
	builddir, ok := cfg.Lookup(layout.BuildDirSetting)
	if !ok {
		return nil, &MissingSettingError{Name: layout.BuildDirSetting}
	}

	var plan Plan

	appendTranslated := func(name string) error {
		value, ok := cfg.Lookup(name)
		if !ok {
			return &MissingSettingError{Name: name}
		}
		plan = append(plan, e.translator.Translate(value)...)
		return nil
	}

	for _, name := range layout.LDFlagsSettings() {
		if err := appendTranslated(name); err != nil {
			return nil, err
		}
	}

	for _, suffix := range layout.SearchPathSuffixes(e.preserveDuplicates) {
		plan = append(plan, translator.SearchPath(filepath.Join(builddir, suffix)))
	}

	for _, name := range layout.StaticComponents() {
		plan = append(plan, translator.StaticLibrary(name))
	}

	for _, name := range layout.TrailingLibSettings() {
		if err := appendTranslated(name); err != nil {
			return nil, err
		}
	}

	return plan, nil
}
