package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/viant/ngdeps"
)

// DefaultMaxSourceSize is the default source size limit (10MB)
const DefaultMaxSourceSize = 10 * 1024 * 1024

// Analyzer extracts AngularJS module dependencies from JavaScript/JSX source.
// It is safe for concurrent use: every call parses with its own tree-sitter parser
// and accumulates into its own state.
type Analyzer struct {
	maxSourceSize int
	logger        *slog.Logger
}

// New creates an Analyzer
func New(options ...Option) *Analyzer {
	ret := &Analyzer{
		maxSourceSize: DefaultMaxSourceSize,
		logger:        slog.Default(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

var defaultAnalyzer = New()

// Analyze analyzes source with the default Analyzer
func Analyze(ctx context.Context, source string) (*ngdeps.Result, error) {
	return defaultAnalyzer.Analyze(ctx, []byte(source))
}

// Analyze parses src and returns declared modules and external module dependencies
func (a *Analyzer) Analyze(ctx context.Context, src []byte) (*ngdeps.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis canceled before start: %w", err)
	}
	if a.maxSourceSize > 0 && len(src) > a.maxSourceSize {
		return nil, fmt.Errorf("%w: size %d exceeds limit %d", ErrSourceTooLarge, len(src), a.maxSourceSize)
	}
	if !utf8.Valid(src) {
		return nil, ErrInvalidContent
	}

	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, ErrSyntax
	}

	s := newState()
	a.walk(root, src, s)
	return s.result(), nil
}

// walk visits n in depth-first, left-to-right postorder; alias resolution
// relies on declarations exiting before later sibling statements.
func (a *Analyzer) walk(n *sitter.Node, src []byte, s *state) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		a.walk(n.NamedChild(i), src, s)
	}
	a.visit(n, src, s)
}

func (a *Analyzer) visit(n *sitter.Node, src []byte, s *state) {
	switch v := classify(n, src).(type) {
	case declarator:
		if value, ok := v.aliasValue(src); ok {
			s.aliases[v.name] = value
		}
	case callSite:
		if v.isCoreModuleSelfDeclaration(src) {
			s.registry.declare(ngdeps.CoreModule, []string{})
		}
	case memberAccess:
		if !v.isModuleStatement() {
			return
		}
		call, ok := enclosingCall(n, src)
		if !ok {
			return
		}
		a.moduleStatement(call, src, s)
	}
}

// moduleStatement registers angular.module(name, deps) or records angular.module(name)
func (a *Analyzer) moduleStatement(call callSite, src []byte, s *state) {
	if len(call.args) == 0 {
		a.logger.Debug("angular.module call without arguments", "offset", call.offset)
		return
	}
	name, ok := s.resolve(call.args[0], src)
	if !ok {
		a.logger.Debug("unresolved angular module name", "offset", call.offset, "arg", call.args[0].Content(src))
		return
	}
	if len(call.args) > 1 {
		s.registry.declare(name, stringElements(call.args[1], src))
		return
	}
	s.rootRefs = append(s.rootRefs, name)
}
