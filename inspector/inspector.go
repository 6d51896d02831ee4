package inspector

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/ngdeps"
	"github.com/viant/ngdeps/analyzer"
	"github.com/viant/ngdeps/inspector/graph"
	"github.com/viant/ngdeps/inspector/info"
	"github.com/viant/ngdeps/inspector/repository"
	"golang.org/x/sync/errgroup"
)

// Inspector analyzes JavaScript sources from any afs supported storage
type Inspector struct {
	config   *info.Config
	fs       afs.Service
	analyzer *analyzer.Analyzer
	detector *repository.Detector
	logger   *slog.Logger

	mux   sync.Mutex
	cache map[uint64]*ngdeps.Result
}

// Option configures an Inspector
type Option func(*Inspector)

// WithFS sets the storage service
func WithFS(fs afs.Service) Option {
	return func(i *Inspector) {
		i.fs = fs
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(i *Inspector) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// New creates an Inspector with the provided configuration
func New(config *info.Config, options ...Option) *Inspector {
	if config == nil {
		config = info.DefaultConfig()
	}
	config.Init()
	ret := &Inspector{
		config: config,
		logger: slog.Default(),
		cache:  map[uint64]*ngdeps.Result{},
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	ret.analyzer = analyzer.New(analyzer.WithMaxSourceSize(config.MaxFileSize), analyzer.WithLogger(ret.logger))
	ret.detector = repository.New(ret.fs)
	return ret
}

// InspectSource analyzes src; identical contents are analyzed once
func (i *Inspector) InspectSource(ctx context.Context, src []byte, location string) (*graph.File, error) {
	hash, err := graph.Hash(src)
	if err != nil {
		return nil, err
	}
	file := &graph.File{Name: path.Base(location), Path: location, Hash: hash}
	i.mux.Lock()
	cached, ok := i.cache[hash]
	i.mux.Unlock()
	if ok {
		file.Result = cached.Clone()
		return file, nil
	}
	result, err := i.analyzer.Analyze(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s: %w", location, err)
	}
	i.mux.Lock()
	i.cache[hash] = result.Clone()
	i.mux.Unlock()
	file.Result = result
	return file, nil
}

// InspectFile downloads and analyzes a single file
func (i *Inspector) InspectFile(ctx context.Context, URL string) (*graph.File, error) {
	src, err := i.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", URL, err)
	}
	return i.InspectSource(ctx, src, URL)
}

// InspectPackage analyzes matching files directly under the directory URL
func (i *Inspector) InspectPackage(ctx context.Context, URL string) (*graph.Package, error) {
	URL = strings.TrimRight(URL, "/")
	files, err := i.collect(ctx, URL, false)
	if err != nil {
		return nil, err
	}
	pkg := &graph.Package{Name: path.Base(URL), Path: URL}
	var URLs []string
	for _, candidates := range files {
		URLs = append(URLs, candidates...)
	}
	inspected, err := i.inspectFiles(ctx, URLs)
	if err != nil {
		return nil, err
	}
	for _, file := range inspected {
		pkg.AddFile(file)
	}
	return pkg, nil
}

// InspectProject analyzes matching files under URL grouped into packages per directory
func (i *Inspector) InspectProject(ctx context.Context, URL string) (*graph.Project, error) {
	URL = strings.TrimRight(URL, "/")
	detected, err := i.detector.DetectProject(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to detect project %s: %w", URL, err)
	}
	project := &graph.Project{Name: detected.Name, Type: detected.Type, RootPath: detected.RootPath}
	files, err := i.collect(ctx, URL, i.config.RecursivePackages)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for dir := range files {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	for _, dir := range dirs {
		inspected, err := i.inspectFiles(ctx, files[dir])
		if err != nil {
			return nil, err
		}
		if len(inspected) == 0 {
			continue
		}
		pkg := &graph.Package{Name: path.Base(dir), Path: dir}
		for _, file := range inspected {
			pkg.AddFile(file)
		}
		project.AddPackage(pkg)
	}
	project.Init()
	i.logger.Debug("inspected project", "root", project.RootPath, "packages", len(project.Packages))
	return project, nil
}

// collect returns matching file URLs grouped by directory URL
func (i *Inspector) collect(ctx context.Context, URL string, recursive bool) (map[string][]string, error) {
	files := map[string][]string{}
	visitor := func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return recursive && i.config.MatchDir(info.Name()), nil
		}
		if !i.config.MatchFile(info.Name()) {
			return true, nil
		}
		if i.config.MaxFileSize > 0 && info.Size() > int64(i.config.MaxFileSize) {
			i.logger.Warn("skipping large file", "file", info.Name(), "size", info.Size())
			return true, nil
		}
		dir := strings.TrimRight(baseURL, "/")
		if parent != "" {
			dir = url.Join(dir, parent)
		}
		files[dir] = append(files[dir], url.Join(dir, info.Name()))
		return true, nil
	}
	if err := i.fs.Walk(ctx, URL, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", URL, err)
	}
	return files, nil
}

// inspectFiles analyzes files concurrently, returning them sorted by path
func (i *Inspector) inspectFiles(ctx context.Context, URLs []string) ([]*graph.File, error) {
	sort.Strings(URLs)
	inspected := make([]*graph.File, len(URLs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(i.config.Concurrency)
	for idx, URL := range URLs {
		idx, URL := idx, URL
		group.Go(func() error {
			file, err := i.InspectFile(groupCtx, URL)
			if err != nil {
				return err
			}
			inspected[idx] = file
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	var ret []*graph.File
	for _, file := range inspected {
		if !i.config.IncludeNonAngular && !file.IsAngular() {
			i.logger.Debug("skipping non angular file", "file", file.Path)
			continue
		}
		ret = append(ret, file)
	}
	return ret, nil
}
