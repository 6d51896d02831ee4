package repository

import "golang.org/x/mod/modfile"

// Project represents information about a detected project
type Project struct {
	RootPath     string // Project root URL
	Type         string // Type of project (javascript, go, git, unknown)
	Name         string // Name of the project (extracted from manifest files)
	RelativePath string // Path from project root to the inspected location
	GoModule     *modfile.Module
}
