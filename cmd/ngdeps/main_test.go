package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestAnalyzeCommand(t *testing.T) {
	fs := afs.New()
	ctx := context.Background()
	baseURL := "mem://localhost/cli/app"
	for URL, content := range map[string]string{
		baseURL + "/bower.json":           `{"name": "cli-app"}`,
		baseURL + "/js/app.js":            `angular.module("app", ["app.core", "ngRoute"]);`,
		baseURL + "/js/core/core.js":      `angular.module("app.core", []);`,
		baseURL + "/js/vendor.min.js":     `angular.module("vendor", []);`,
		"mem://localhost/cli/config.yaml": "recursivePackages: false\n",
	} {
		require.NoError(t, fs.Upload(ctx, URL, 0644, strings.NewReader(content)))
	}

	var testCases = []struct {
		description string
		args        []string
		expect      string
	}{
		{
			description: "directory as json",
			args:        []string{"analyze", baseURL},
			expect: `[
  {"path": "js/app.js", "dependencies": ["ng", "app.core", "ngRoute"], "modules": {"app": ["app.core", "ngRoute"]}},
  {"path": "js/core/core.js", "dependencies": ["ng"], "modules": {"app.core": []}}
]`,
		},
		{
			description: "single file",
			args:        []string{"analyze", baseURL + "/js/core/core.js"},
			expect:      `[{"path": "mem://localhost/cli/app/js/core/core.js", "dependencies": ["ng"], "modules": {"app.core": []}}]`,
		},
		{
			description: "config disables recursion",
			args:        []string{"analyze", "--config", "mem://localhost/cli/config.yaml", baseURL + "/js"},
			expect:      `[{"path": "js/app.js", "dependencies": ["ng", "app.core", "ngRoute"], "modules": {"app": ["app.core", "ngRoute"]}}]`,
		},
	}
	for _, testCase := range testCases {
		output := &bytes.Buffer{}
		cmd := newRootCommand()
		cmd.SetOut(output)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(testCase.args)
		require.NoError(t, cmd.Execute(), testCase.description)
		assert.JSONEq(t, testCase.expect, output.String(), testCase.description)
	}
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	var testCases = [][]string{
		{"analyze"},
		{"analyze", "--format", "xml", "mem://localhost/cli/app"},
		{"analyze", "mem://localhost/cli/missing.js"},
	}
	for _, args := range testCases {
		cmd := newRootCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		assert.Error(t, cmd.Execute(), strings.Join(args, " "))
	}
}

func TestVersionCommand(t *testing.T) {
	output := &bytes.Buffer{}
	cmd := newRootCommand()
	cmd.SetOut(output)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "dev\n", output.String())
}
