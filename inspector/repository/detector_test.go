package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestDetector_DetectProject(t *testing.T) {
	fs := afs.New()
	ctx := context.Background()
	for URL, content := range map[string]string{
		"mem://localhost/detector/web/bower.json":       `{"name": "legacy-web"}`,
		"mem://localhost/detector/web/app/js/app.js":    `angular.module("app", []);`,
		"mem://localhost/detector/svc/go.mod":           "module github.com/acme/svc\n\ngo 1.22\n",
		"mem://localhost/detector/svc/static/js/app.js": `angular.module("svc", []);`,
		"mem://localhost/detector/npm/package.json":     `{"name": "npm-app"}`,
		"mem://localhost/detector/npm/bower.json":       `{"name": "ignored"}`,
		"mem://localhost/detector/npm/client/index.jsx": `angular.module("npm", []);`,
	} {
		require.NoError(t, fs.Upload(ctx, URL, 0644, strings.NewReader(content)))
	}

	var testCases = []struct {
		description string
		location    string
		root        string
		kind        string
		name        string
		relative    string
	}{
		{
			description: "bower project from file",
			location:    "mem://localhost/detector/web/app/js/app.js",
			root:        "mem://localhost/detector/web",
			kind:        "javascript",
			name:        "legacy-web",
			relative:    "app/js/app.js",
		},
		{
			description: "go module serving assets",
			location:    "mem://localhost/detector/svc/static",
			root:        "mem://localhost/detector/svc",
			kind:        "go",
			name:        "github.com/acme/svc",
			relative:    "static",
		},
		{
			description: "package.json takes precedence",
			location:    "mem://localhost/detector/npm/",
			root:        "mem://localhost/detector/npm",
			kind:        "javascript",
			name:        "npm-app",
			relative:    ".",
		},
	}
	detector := New(fs)
	for _, testCase := range testCases {
		project, err := detector.DetectProject(ctx, testCase.location)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.root, project.RootPath, testCase.description)
		assert.Equal(t, testCase.kind, project.Type, testCase.description)
		assert.Equal(t, testCase.name, project.Name, testCase.description)
		assert.Equal(t, testCase.relative, project.RelativePath, testCase.description)
	}
}

func TestParentURL(t *testing.T) {
	assert.Equal(t, "mem://localhost/a", parentURL("mem://localhost/a/b"))
	assert.Equal(t, "mem://localhost/", parentURL("mem://localhost/a"))
	assert.Equal(t, "mem://localhost/", parentURL("mem://localhost/"))
	assert.Equal(t, "/tmp", parentURL("/tmp/app"))
	assert.Equal(t, "/", parentURL("/"))
	assert.Equal(t, "file:///", parentURL("file:///tmp"))
}
