package discovery

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/minunit/minunit/internal/domain"
)

// Parser parses Go files to extract marked suite functions
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// FindSuite parses a Go source file and returns the suite it declares.
// Files without any marker return a nil plan and no error.
func (p *Parser) FindSuite(filePath string) (*domain.SuitePlan, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("error parsing file %s: %w", filePath, err)
	}

	plan := &domain.SuitePlan{
		Name:     strings.TrimSuffix(filepath.Base(filePath), ".go"),
		Package:  file.Name.Name,
		FilePath: filePath,
	}
	marked := false

	// A //minunit:suite comment anywhere in the file names the suite
	for _, group := range file.Comments {
		for _, c := range group.List {
			kind, arg, ok := parseMarker(c.Text)
			if ok && kind == domain.MarkerSuite {
				if arg == "" {
					return nil, fmt.Errorf("%s: %s needs a name", position(fset, c.Pos()), domain.MarkerPrefix+domain.MarkerSuite)
				}
				plan.Name = arg
				marked = true
			}
		}
	}

	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Doc == nil {
			continue
		}

		for _, c := range fn.Doc.List {
			kind, _, ok := parseMarker(c.Text)
			if !ok || kind == domain.MarkerSuite {
				continue
			}

			ref, err := funcRef(fset, fn)
			if err != nil {
				return nil, err
			}
			if err := assign(plan, kind, ref); err != nil {
				return nil, fmt.Errorf("%s: %w", position(fset, fn.Pos()), err)
			}
			marked = true
		}
	}

	if !marked {
		return nil, nil
	}
	return plan, nil
}

// FindSuites parses every file and returns the plans found, in file order
func (p *Parser) FindSuites(files []string) ([]*domain.SuitePlan, error) {
	var plans []*domain.SuitePlan
	for _, f := range files {
		plan, err := p.FindSuite(f)
		if err != nil {
			return nil, err
		}
		if plan != nil {
			plans = append(plans, plan)
		}
	}
	return plans, nil
}

func parseMarker(text string) (kind, arg string, ok bool) {
	if !strings.HasPrefix(text, domain.MarkerPrefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(text, domain.MarkerPrefix)
	kind, arg, _ = strings.Cut(rest, " ")
	return strings.ToLower(kind), strings.TrimSpace(arg), true
}

func assign(plan *domain.SuitePlan, kind string, ref domain.FuncRef) error {
	var slot **domain.FuncRef
	switch kind {
	case domain.MarkerTest:
		plan.Tests = append(plan.Tests, ref)
		return nil
	case domain.MarkerBeforeClass:
		slot = &plan.BeforeClass
	case domain.MarkerAfterClass:
		slot = &plan.AfterClass
	case domain.MarkerBefore:
		slot = &plan.Before
	case domain.MarkerAfter:
		slot = &plan.After
	default:
		return fmt.Errorf("unknown marker %s%s on %s", domain.MarkerPrefix, kind, ref.Name)
	}

	if *slot != nil {
		return fmt.Errorf("%s%s on %s: already declared by %s", domain.MarkerPrefix, kind, ref.Name, (*slot).Name)
	}
	*slot = &ref
	return nil
}

// funcRef checks that fn is a top-level func() or func() error
func funcRef(fset *token.FileSet, fn *ast.FuncDecl) (domain.FuncRef, error) {
	ref := domain.FuncRef{
		Name: fn.Name.Name,
		Line: fset.Position(fn.Pos()).Line,
	}
	where := position(fset, fn.Pos())

	if fn.Recv != nil {
		return ref, fmt.Errorf("%s: %s must not be a method", where, ref.Name)
	}
	if fn.Type.TypeParams != nil && len(fn.Type.TypeParams.List) > 0 {
		return ref, fmt.Errorf("%s: %s must not be generic", where, ref.Name)
	}
	if fn.Type.Params != nil && len(fn.Type.Params.List) > 0 {
		return ref, fmt.Errorf("%s: %s must take no arguments", where, ref.Name)
	}

	results := fn.Type.Results
	if results == nil || len(results.List) == 0 {
		return ref, nil
	}
	if len(results.List) == 1 && len(results.List[0].Names) <= 1 {
		if ident, ok := results.List[0].Type.(*ast.Ident); ok && ident.Name == "error" {
			ref.ReturnsError = true
			return ref, nil
		}
	}
	return ref, fmt.Errorf("%s: %s must return nothing or a single error", where, ref.Name)
}

func position(fset *token.FileSet, pos token.Pos) string {
	p := fset.Position(pos)
	return fmt.Sprintf("%s:%d", p.Filename, p.Line)
}
