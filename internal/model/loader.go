package model

import "sync"

// Loader owns the process-wide classifier. The model loads lazily on first
// use and is immutable afterwards; concurrent first callers share a single
// load via sync.Once. Pass the Loader into consumers explicitly rather than
// through package-level state.
type Loader struct {
	path string

	once  sync.Once
	model *Model
	err   error
}

// NewLoader prepares a loader for the artifact at path without touching disk.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Get returns the loaded model, loading it exactly once. Every caller sees
// the same model or the same load error.
func (l *Loader) Get() (*Model, error) {
	l.once.Do(func() {
		l.model, l.err = Load(l.path)
	})
	return l.model, l.err
}
