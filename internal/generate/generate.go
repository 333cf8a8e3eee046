// Package generate turns discovered suite plans into Go registration code.
package generate

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/minunit/minunit/internal/domain"
)

// ImportPath is the import path of the core package used by generated code
const ImportPath = "github.com/minunit/minunit/pkg/unit"

var fileTemplate = template.Must(template.New("suites").Funcs(template.FuncMap{
	"hook": hookExpr,
	"test": testExpr,
}).Parse(`// Code generated by minunit generate. DO NOT EDIT.

package {{ .Package }}

import "` + ImportPath + `"

// Suites returns the suites declared in this package, in file name order.
func Suites() []*unit.Suite {
	return []*unit.Suite{
{{- range .Plans }}
		unit.NewSuite({{ printf "%q" .Name }}, unit.Hooks{
			{{- with .BeforeClass }}
			BeforeClass: {{ hook . }},{{ end }}
			{{- with .AfterClass }}
			AfterClass: {{ hook . }},{{ end }}
			{{- with .Before }}
			Before: {{ hook . }},{{ end }}
			{{- with .After }}
			After: {{ hook . }},{{ end }}
		},
		{{- range .Tests }}
			{{ test . }},
		{{- end }}
		),
{{- end }}
	}
}
`))

func hookExpr(ref *domain.FuncRef) string {
	if ref.ReturnsError {
		return ref.Name
	}
	return fmt.Sprintf("unit.HookFunc(%s)", ref.Name)
}

func testExpr(ref domain.FuncRef) string {
	if ref.ReturnsError {
		return fmt.Sprintf("unit.Test(%q, %s)", ref.Name, ref.Name)
	}
	return fmt.Sprintf("unit.TestFunc(%q, %s)", ref.Name, ref.Name)
}

// Render produces the gofmt'ed registration file for one package.
// All plans must belong to pkg.
func Render(pkg string, plans []*domain.SuitePlan) ([]byte, error) {
	sorted := make([]*domain.SuitePlan, len(plans))
	copy(sorted, plans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return filepath.Base(sorted[i].FilePath) < filepath.Base(sorted[j].FilePath)
	})

	seen := make(map[string]string)
	for _, p := range sorted {
		if p.Package != pkg {
			return nil, fmt.Errorf("suite %s is in package %s, not %s", p.Name, p.Package, pkg)
		}
		if other, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("suite name %q used by both %s and %s", p.Name, other, p.FilePath)
		}
		seen[p.Name] = p.FilePath
	}

	var buf bytes.Buffer
	data := struct {
		Package string
		Plans   []*domain.SuitePlan
	}{pkg, sorted}
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render suites for %s: %w", pkg, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format suites for %s: %w", pkg, err)
	}
	return src, nil
}

// Writer writes one registration file per package directory
type Writer struct {
	fileName string
}

// NewWriter creates a Writer that names every generated file fileName
func NewWriter(fileName string) *Writer {
	return &Writer{fileName: fileName}
}

// Write groups plans by directory, renders each group and writes it next to
// its sources. It returns the written paths in lexical order.
func (w *Writer) Write(plans []*domain.SuitePlan) ([]string, error) {
	byDir := make(map[string][]*domain.SuitePlan)
	for _, p := range plans {
		dir := filepath.Dir(p.FilePath)
		byDir[dir] = append(byDir[dir], p)
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	var written []string
	for _, dir := range dirs {
		group := byDir[dir]
		src, err := Render(group[0].Package, group)
		if err != nil {
			return written, err
		}

		path := filepath.Join(dir, w.fileName)
		if err := os.WriteFile(path, src, 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
