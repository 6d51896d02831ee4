package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/ngdeps/inspector"
	"github.com/viant/ngdeps/inspector/graph"
	"github.com/viant/ngdeps/inspector/info"
)

// analyzeOptions holds flag values for the analyze command.
type analyzeOptions struct {
	format            string
	configURL         string
	recursive         bool
	skipTests         bool
	includeNonAngular bool
}

func newAnalyzeCommand() *cobra.Command {
	options := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze <file|dir|URL>...",
		Short: "Analyze files or directories and print module dependencies per file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			emitter, err := graph.NewEmitter(options.format)
			if err != nil {
				return err
			}
			files, err := runAnalyze(cmd.Context(), options, cmd.Flags().Changed("recursive"), args)
			if err != nil {
				return err
			}
			data, err := emitter.Emit(files)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&options.format, "format", "f", "json", "output format: json or yaml")
	flags.StringVarP(&options.configURL, "config", "c", "", "YAML config file or URL")
	flags.BoolVarP(&options.recursive, "recursive", "r", true, "descend into subdirectories")
	flags.BoolVar(&options.skipTests, "skip-tests", false, "skip *.spec.js and *.test.js files")
	flags.BoolVar(&options.includeNonAngular, "include-non-angular", false, "list files without AngularJS usage")
	return cmd
}

func runAnalyze(ctx context.Context, options *analyzeOptions, recursiveChanged bool, locations []string) ([]*graph.File, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	fs := afs.New()
	config := info.DefaultConfig()
	if options.configURL != "" {
		loaded, err := info.LoadConfig(ctx, fs, location(options.configURL))
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	if recursiveChanged || options.configURL == "" {
		config.RecursivePackages = options.recursive
	}
	if options.skipTests {
		config.SkipTests = true
	}
	if options.includeNonAngular {
		config.IncludeNonAngular = true
	}

	srv := inspector.New(config, inspector.WithFS(fs), inspector.WithLogger(slog.Default()))
	var files []*graph.File
	for _, candidate := range locations {
		URL := location(candidate)
		object, err := fs.Object(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", candidate, err)
		}
		if !object.IsDir() {
			file, err := srv.InspectFile(ctx, URL)
			if err != nil {
				return nil, err
			}
			file.Path = candidate
			files = append(files, file)
			continue
		}
		project, err := srv.InspectProject(ctx, URL)
		if err != nil {
			return nil, err
		}
		slog.Debug("analyzed project", "name", project.Name, "type", project.Type, "root", project.RootPath)
		files = append(files, project.Files()...)
	}
	return files, nil
}

// location turns local paths into absolute ones, URLs are kept as is
func location(candidate string) string {
	if strings.Contains(candidate, "://") {
		return candidate
	}
	if abs, err := filepath.Abs(candidate); err == nil {
		return abs
	}
	return candidate
}
