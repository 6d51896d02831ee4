package repository

import (
	"context"
	"encoding/json"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"golang.org/x/mod/modfile"
)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	fs afs.Service
	// project root marker files/directories, in precedence order
	markers []string
}

// New creates a new project detector instance
func New(fs afs.Service) *Detector {
	return &Detector{
		fs: fs,
		markers: []string{
			"package.json", // npm projects
			"bower.json",   // bower projects, common for AngularJS apps
			"go.mod",       // Go services embedding web assets
			".git",         // Generic VCS marker
		},
	}
}

// DetectProject identifies the project root for the given location and returns project info
func (d *Detector) DetectProject(ctx context.Context, location string) (*Project, error) {
	location = strings.TrimRight(location, "/")
	object, err := d.fs.Object(ctx, location)
	if err != nil {
		return nil, err
	}
	startDir := location
	if !object.IsDir() {
		startDir = parentURL(location)
	}

	info := &Project{Type: "unknown", RootPath: startDir}
	rootPath, marker, err := d.findProjectRoot(ctx, startDir)
	if err != nil {
		return nil, err
	}
	if rootPath != "" {
		info.RootPath = rootPath
		info.Type = determineProjectType(marker)
		info.Name, info.GoModule = d.extractProjectName(ctx, rootPath, marker)
	}
	if info.Name == "" {
		info.Name = path.Base(pathOf(info.RootPath))
	}
	info.RelativePath = "."
	if rel := strings.TrimPrefix(location, info.RootPath+"/"); rel != location {
		info.RelativePath = rel
	}
	return info, nil
}

// findProjectRoot searches up from the start directory for project markers
func (d *Detector) findProjectRoot(ctx context.Context, startDir string) (string, string, error) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			ok, err := d.fs.Exists(ctx, url.Join(dir, marker))
			if err != nil {
				return "", "", err
			}
			if ok {
				return dir, marker, nil
			}
		}
		parent := parentURL(dir)
		if parent == dir {
			return "", "", nil
		}
		dir = parent
	}
}

func (d *Detector) extractProjectName(ctx context.Context, rootPath, marker string) (string, *modfile.Module) {
	switch marker {
	case "package.json", "bower.json":
		data, err := d.fs.DownloadWithURL(ctx, url.Join(rootPath, marker))
		if err != nil {
			return "", nil
		}
		manifest := struct {
			Name string `json:"name"`
		}{}
		if err = json.Unmarshal(data, &manifest); err != nil {
			return "", nil
		}
		return manifest.Name, nil
	case "go.mod":
		goModPath := url.Join(rootPath, marker)
		data, err := d.fs.DownloadWithURL(ctx, goModPath)
		if err != nil {
			return "", nil
		}
		mod, err := modfile.ParseLax(goModPath, data, nil)
		if err != nil || mod.Module == nil {
			return "", nil
		}
		return mod.Module.Mod.Path, mod.Module
	}
	return "", nil
}

// determineProjectType identifies the type of project based on the marker file
func determineProjectType(marker string) string {
	switch marker {
	case "package.json", "bower.json":
		return "javascript"
	case "go.mod":
		return "go"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}

// parentURL returns the parent location, or URL itself at the root
func parentURL(URL string) string {
	prefix, location := splitURL(URL)
	parent := path.Dir(location)
	if parent == location || (parent == "." && location == "") {
		return URL
	}
	return prefix + parent
}

func pathOf(URL string) string {
	_, location := splitURL(URL)
	return location
}

// splitURL splits scheme://host from the path
func splitURL(URL string) (string, string) {
	idx := strings.Index(URL, "://")
	if idx == -1 {
		return "", URL
	}
	rest := URL[idx+3:]
	slash := strings.Index(rest, "/")
	if slash == -1 {
		return URL, "/"
	}
	return URL[:idx+3+slash], rest[slash:]
}
