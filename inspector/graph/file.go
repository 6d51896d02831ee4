package graph

import (
	"encoding/json"
	"sort"

	"github.com/viant/ngdeps"
	"gopkg.in/yaml.v3"
)

// File represents an analyzed source file
type File struct {
	Name   string         // File name
	Path   string         // File path or URL, relative to the project root once initialized
	Hash   uint64         // Content hash
	Result *ngdeps.Result // Module dependencies
}

// IsAngular returns true if the file declares or references AngularJS modules
func (f *File) IsAngular() bool {
	return f.Result != nil && f.Result.IsAngular()
}

type fileView struct {
	Path         string              `json:"path"`
	Dependencies []string            `json:"dependencies"`
	Modules      map[string][]string `json:"modules"`
}

func (f *File) result() *ngdeps.Result {
	if f.Result == nil {
		return ngdeps.NewResult(nil, nil, nil)
	}
	return f.Result
}

// MarshalJSON flattens the result next to the file path
func (f *File) MarshalJSON() ([]byte, error) {
	result := f.result()
	normalized := ngdeps.NewResult(result.Dependencies, result.Modules, nil)
	return json.Marshal(&fileView{Path: f.Path, Dependencies: normalized.Dependencies, Modules: normalized.Modules})
}

// MarshalYAML flattens the result next to the file path, keeping module declaration order
func (f *File) MarshalYAML() (interface{}, error) {
	value, err := f.result().MarshalYAML()
	if err != nil {
		return nil, err
	}
	node := value.(*yaml.Node)
	path := []*yaml.Node{
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: "path"},
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Path},
	}
	node.Content = append(path, node.Content...)
	return node, nil
}

// Package represents a directory of analyzed files
type Package struct {
	Name  string
	Path  string
	Files []*File

	fileMap     map[string]int
	declaredMap map[string]int
}

// AddFile adds a file to the package
func (p *Package) AddFile(file *File) {
	p.Files = append(p.Files, file)
	p.fileMap = nil
	p.declaredMap = nil
}

// LookupFile retrieves a file by name
func (p *Package) LookupFile(name string) *File {
	if p.fileMap == nil {
		p.indexFiles()
	}
	if idx, ok := p.fileMap[name]; ok && idx < len(p.Files) {
		return p.Files[idx]
	}
	return nil
}

// LookupDeclaration retrieves the first file declaring the module
func (p *Package) LookupDeclaration(module string) *File {
	if p.declaredMap == nil {
		p.indexFiles()
	}
	if idx, ok := p.declaredMap[module]; ok && idx < len(p.Files) {
		return p.Files[idx]
	}
	return nil
}

// Declared returns sorted names of modules declared within the package
func (p *Package) Declared() []string {
	if p.declaredMap == nil {
		p.indexFiles()
	}
	var ret []string
	for name := range p.declaredMap {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

func (p *Package) indexFiles() {
	p.fileMap = make(map[string]int)
	p.declaredMap = make(map[string]int)
	for i, file := range p.Files {
		if file == nil {
			continue
		}
		if _, ok := p.fileMap[file.Name]; !ok {
			p.fileMap[file.Name] = i
		}
		if file.Result == nil {
			continue
		}
		for _, module := range file.Result.ModuleNames() {
			if _, ok := p.declaredMap[module]; !ok {
				p.declaredMap[module] = i
			}
		}
	}
}
