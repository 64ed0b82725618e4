// Package registry maps dotted namespace paths to model symbol tables.
//
// Textual model references like "app.models.User" are resolved against a
// Registry: the prefix selects a namespace, the final segment selects a
// symbol inside it. Namespaces are either registered up front with Add,
// or lazily through AddLoader, which mirrors import-time side effects of
// dynamically loaded model packages.
package registry

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNamespaceNotFound means no namespace or loader is registered for a path.
var ErrNamespaceNotFound = errors.New("namespace not registered")

// Namespace exposes named symbols, usually model descriptors.
type Namespace interface {
	Attribute(name string) (any, bool)
}

// Map is the simplest Namespace: a static symbol table.
type Map map[string]any

func (m Map) Attribute(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// Loader builds a Namespace the first time its path is loaded. It may run
// arbitrary setup code; callers of Load must be aware loading is not
// side-effect-free.
type Loader func() (Namespace, error)

// Registry holds namespaces keyed by dotted path.
type Registry struct {
	mu         sync.Mutex
	namespaces map[string]Namespace
	loaders    map[string]Loader
}

func New() *Registry {
	return &Registry{
		namespaces: make(map[string]Namespace),
		loaders:    make(map[string]Loader),
	}
}

// Add registers a namespace under the given path, replacing any previous
// registration for that path.
func (r *Registry) Add(path string, ns Namespace) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[path] = ns
	delete(r.loaders, path)
}

// AddLoader registers a lazy namespace. The loader runs at most once, on
// the first Load of the path; its result is cached like a loaded module.
func (r *Registry) AddLoader(path string, load Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[path] = load
	delete(r.namespaces, path)
}

// Load returns the namespace registered under path, running its loader if
// it has not been loaded yet. A loader failure is returned unchanged, and
// the loader stays registered so a later Load can retry. Loaders run under
// the registry lock and must not call back into the same registry.
func (r *Registry) Load(path string) (Namespace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ns, ok := r.namespaces[path]; ok {
		return ns, nil
	}
	load, ok := r.loaders[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNamespaceNotFound, path)
	}
	ns, err := load()
	if err != nil {
		return nil, err
	}
	r.namespaces[path] = ns
	delete(r.loaders, path)
	return ns, nil
}

var defaultRegistry = New()

// Default returns the process-wide registry used by package-level calls.
func Default() *Registry { return defaultRegistry }

// Add registers a namespace in the default registry.
func Add(path string, ns Namespace) { defaultRegistry.Add(path, ns) }

// AddLoader registers a lazy namespace in the default registry.
func AddLoader(path string, load Loader) { defaultRegistry.AddLoader(path, load) }

// Load loads a namespace from the default registry.
func Load(path string) (Namespace, error) { return defaultRegistry.Load(path) }
