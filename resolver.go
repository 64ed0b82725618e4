package beanie

import (
	"fmt"
	"strings"

	"github.com/code7-adrianomartins/beanie/pkg/registry"
)

// GetModel resolves a dotted model reference in the format
// "path.to.namespace.Model": everything before the last '.' names a
// registered namespace, the final segment names a symbol inside it.
//
// Loading the namespace may run a registered loader, so resolution is not
// side-effect-free. Loader failures are returned unchanged. Resolution is
// idempotent: the same reference always yields the same model value.
func GetModel(dotPath string) (Model, error) {
	idx := strings.LastIndex(dotPath, ".")
	if idx < 0 {
		return nil, fmt.Errorf(
			"%w: %q doesn't have a '.' path, eg. path.to.your.model.Class",
			ErrInvalidReference, dotPath,
		)
	}
	nsPath, name := dotPath[:idx], dotPath[idx+1:]

	ns, err := registry.Load(nsPath)
	if err != nil {
		return nil, err
	}

	sym, ok := ns.Attribute(name)
	if !ok {
		return nil, fmt.Errorf(
			"%w: namespace %q has no model called %q",
			ErrUnresolvedModel, nsPath, name,
		)
	}
	model, ok := sym.(Model)
	if !ok {
		return nil, fmt.Errorf(
			"%w: %q in namespace %q is %T",
			ErrNotAModel, name, nsPath, sym,
		)
	}
	return model, nil
}
