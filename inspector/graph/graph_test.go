package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ngdeps"
	"github.com/viant/ngdeps/inspector/graph"
	"gopkg.in/yaml.v3"
)

func TestHash(t *testing.T) {
	first, err := graph.Hash([]byte(`angular.module("app", []);`))
	require.NoError(t, err)
	second, err := graph.Hash([]byte(`angular.module("app", []);`))
	require.NoError(t, err)
	other, err := graph.Hash([]byte(`angular.module("other", []);`))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestProject_Init(t *testing.T) {
	project := &graph.Project{RootPath: "file:///work/shop"}
	project.AddPackage(&graph.Package{
		Path:  "/work/shop/src",
		Files: []*graph.File{{Path: "/work/shop/src/app.js"}},
	})
	project.AddPackage(&graph.Package{
		Path:  "file:///work/shop",
		Files: []*graph.File{{Path: "file:///work/shop/index.js"}, {Path: "/elsewhere/lib.js"}},
	})
	project.Init()

	assert.Equal(t, "src", project.Packages[0].Path)
	assert.Equal(t, "src/app.js", project.Packages[0].Files[0].Path)
	assert.Equal(t, "app.js", project.Packages[0].Files[0].Name)
	assert.Equal(t, ".", project.Packages[1].Path)
	assert.Equal(t, "index.js", project.Packages[1].Files[0].Path)
	assert.Equal(t, "/elsewhere/lib.js", project.Packages[1].Files[1].Path)
	assert.NotNil(t, project.LookupPackage("src"))
	assert.Len(t, project.Files(), 3)
}

func TestEmitter(t *testing.T) {
	files := []*graph.File{
		{Path: "src/app.js", Result: ngdeps.NewResult([]string{"ng", "that"}, map[string][]string{"app": {"that"}}, []string{"app"})},
		{Path: "src/plain.js"},
	}

	emitter, err := graph.NewEmitter("json")
	require.NoError(t, err)
	data, err := emitter.Emit(files)
	require.NoError(t, err)
	assert.JSONEq(t, `[
  {"path": "src/app.js", "dependencies": ["ng", "that"], "modules": {"app": ["that"]}},
  {"path": "src/plain.js", "dependencies": [], "modules": {}}
]`, string(data))

	emitter, err = graph.NewEmitter("yaml")
	require.NoError(t, err)
	data, err = emitter.Emit(files)
	require.NoError(t, err)
	var decoded []struct {
		Path         string
		Dependencies []string
		Modules      map[string][]string
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "src/app.js", decoded[0].Path)
	assert.EqualValues(t, []string{"ng", "that"}, decoded[0].Dependencies)
	assert.EqualValues(t, map[string][]string{"app": {"that"}}, decoded[0].Modules)

	data, err = (&graph.JSONEmitter{}).Emit(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	_, err = graph.NewEmitter("xml")
	assert.Error(t, err)
}
