package ngdeps

import (
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"
)

// CoreModule is the name of the AngularJS built-in module
const CoreModule = "ng"

// Result represents AngularJS module dependencies recovered from a single source file
type Result struct {
	Dependencies []string            `json:"dependencies" yaml:"dependencies"` // external modules, "ng" first
	Modules      map[string][]string `json:"modules" yaml:"modules"`           // declared module -> explicit dependencies

	order []string
}

// NewResult creates a result; order lists module names in declaration order
func NewResult(dependencies []string, modules map[string][]string, order []string) *Result {
	if dependencies == nil {
		dependencies = []string{}
	}
	if modules == nil {
		modules = map[string][]string{}
	}
	return &Result{Dependencies: dependencies, Modules: modules, order: order}
}

// ModuleNames returns declared module names in first-declaration order
func (r *Result) ModuleNames() []string {
	if len(r.order) == len(r.Modules) {
		return append([]string(nil), r.order...)
	}
	// result built by hand or decoded
	var names []string
	seen := map[string]bool{}
	for _, name := range r.order {
		if _, ok := r.Modules[name]; ok && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	for _, name := range sortedKeys(r.Modules) {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}

// IsAngular returns true if the source used AngularJS modules at all
func (r *Result) IsAngular() bool {
	return len(r.Modules) > 0 || len(r.Dependencies) > 0
}

// Clone returns a deep copy
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	modules := make(map[string][]string, len(r.Modules))
	for name, deps := range r.Modules {
		modules[name] = append([]string{}, deps...)
	}
	return NewResult(append([]string{}, r.Dependencies...), modules, append([]string(nil), r.order...))
}

// MarshalJSON never emits null for empty collections
func (r *Result) MarshalJSON() ([]byte, error) {
	type alias Result
	normalized := NewResult(r.Dependencies, r.Modules, nil)
	return json.Marshal((*alias)(normalized))
}

// MarshalYAML emits modules in declaration order
func (r *Result) MarshalYAML() (interface{}, error) {
	deps := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, dep := range r.Dependencies {
		deps.Content = append(deps.Content, scalar(dep))
	}
	modules := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range r.ModuleNames() {
		list := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, dep := range r.Modules[name] {
			list.Content = append(list.Content, scalar(dep))
		}
		modules.Content = append(modules.Content, scalar(name), list)
	}
	if len(modules.Content) == 0 {
		modules.Style = yaml.FlowStyle
	}
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{scalar("dependencies"), deps, scalar("modules"), modules},
	}, nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
