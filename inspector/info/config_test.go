package info_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/ngdeps/inspector/info"
)

func TestLoadConfig(t *testing.T) {
	fs := afs.New()
	ctx := context.Background()
	URL := "mem://localhost/info/ngdeps.yaml"
	require.NoError(t, fs.Upload(ctx, URL, 0644, strings.NewReader(`
extensions: [".js", ".es6"]
skipTests: true
concurrency: 2
`)))

	config, err := info.LoadConfig(ctx, fs, URL)
	require.NoError(t, err)
	assert.EqualValues(t, []string{".js", ".es6"}, config.Extensions)
	assert.True(t, config.SkipTests)
	assert.True(t, config.SkipMinified)
	assert.Equal(t, 2, config.Concurrency)
	assert.EqualValues(t, []string{"node_modules", "bower_components", ".git"}, config.SkipDirs)

	_, err = info.LoadConfig(ctx, fs, "mem://localhost/info/missing.yaml")
	assert.Error(t, err)
}

func TestConfig_MatchFile(t *testing.T) {
	config := info.DefaultConfig()
	config.SkipTests = true
	var testCases = []struct {
		name   string
		expect bool
	}{
		{name: "app.js", expect: true},
		{name: "View.JSX", expect: true},
		{name: "angular.min.js", expect: false},
		{name: "app.spec.js", expect: false},
		{name: "app.test.jsx", expect: false},
		{name: "app.ts", expect: false},
		{name: "README.md", expect: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, config.MatchFile(testCase.name), testCase.name)
	}
	assert.False(t, config.MatchDir("node_modules"))
	assert.True(t, config.MatchDir("src"))
}
