package analyzer

import "github.com/viant/ngdeps"

// aggregate unions root references with declared dependencies, keeping the
// first occurrence and dropping locally declared modules. Any file using
// AngularJS depends on the core module unless it declares it.
func aggregate(rootRefs []string, reg *registry) []string {
	deps := []string{}
	seen := map[string]bool{}
	add := func(names []string) {
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true
			if reg.has(name) {
				continue
			}
			deps = append(deps, name)
		}
	}
	add(rootRefs)
	for _, name := range reg.names {
		add(reg.deps[name])
	}
	isAngular := len(reg.names) > 0 || len(deps) > 0
	if isAngular && !reg.has(ngdeps.CoreModule) {
		deps = promote(deps, ngdeps.CoreModule)
	}
	return deps
}

// promote moves name to the front, adding it when absent
func promote(names []string, name string) []string {
	ret := make([]string, 0, len(names)+1)
	ret = append(ret, name)
	for _, candidate := range names {
		if candidate != name {
			ret = append(ret, candidate)
		}
	}
	return ret
}
