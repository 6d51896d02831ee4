package graph

import (
	"path"
	"strings"
)

// Project represents analyzed packages under a project root
type Project struct {
	Name     string
	Type     string
	RootPath string
	Packages []*Package

	packageMap map[string]int //position
}

// AddPackage adds a package to the project
func (p *Project) AddPackage(pkg *Package) {
	p.Packages = append(p.Packages, pkg)
	p.packageMap = nil
}

// LookupPackage retrieves a package by path
func (p *Project) LookupPackage(pkgPath string) *Package {
	if p.packageMap == nil {
		p.packageMap = make(map[string]int)
		for i, pkg := range p.Packages {
			p.packageMap[pkg.Path] = i
		}
	}
	if idx, ok := p.packageMap[pkgPath]; ok && idx < len(p.Packages) {
		return p.Packages[idx]
	}
	return nil
}

// Files returns all project files in package order
func (p *Project) Files() []*File {
	var ret []*File
	for _, pkg := range p.Packages {
		ret = append(ret, pkg.Files...)
	}
	return ret
}

// Init makes package and file paths relative to the project root
func (p *Project) Init() {
	if p.RootPath == "" {
		return
	}
	root := strings.TrimSuffix(p.RootPath, "/")
	for _, pkg := range p.Packages {
		pkg.Path = relative(root, pkg.Path)
		for _, file := range pkg.Files {
			if file.Name == "" {
				file.Name = path.Base(file.Path)
			}
			file.Path = relative(root, file.Path)
		}
	}
	p.packageMap = nil
}

func relative(root, location string) string {
	root, rel := pathOf(root), pathOf(location)
	if rel == root {
		return "."
	}
	if trimmed := strings.TrimPrefix(rel, root+"/"); trimmed != rel {
		return trimmed
	}
	return location
}

// pathOf strips scheme and host so that file:///app and /app compare equal
func pathOf(location string) string {
	idx := strings.Index(location, "://")
	if idx == -1 {
		return location
	}
	rest := location[idx+3:]
	if slash := strings.Index(rest, "/"); slash != -1 {
		return rest[slash:]
	}
	return "/"
}
