package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/ngdeps"
)

// registry holds declared modules; a re-declared module keeps its first position
type registry struct {
	names []string
	deps  map[string][]string
}

func (r *registry) declare(name string, deps []string) {
	if _, ok := r.deps[name]; !ok {
		r.names = append(r.names, name)
	}
	r.deps[name] = deps
}

func (r *registry) has(name string) bool {
	_, ok := r.deps[name]
	return ok
}

// state accumulates a single analysis
type state struct {
	aliases  map[string]string
	registry *registry
	rootRefs []string
}

func newState() *state {
	return &state{
		aliases:  map[string]string{},
		registry: &registry{deps: map[string][]string{}},
	}
}

// resolve returns a module name from a literal or a string-bound variable
func (s *state) resolve(arg *sitter.Node, src []byte) (string, bool) {
	if value, ok := stringLiteral(arg, src); ok {
		return value, value != ""
	}
	arg = unwrap(arg)
	if arg.Type() != nodeIdentifier {
		return "", false
	}
	value, ok := s.aliases[arg.Content(src)]
	return value, ok && value != ""
}

func (s *state) result() *ngdeps.Result {
	return ngdeps.NewResult(aggregate(s.rootRefs, s.registry), s.registry.deps, s.registry.names)
}
