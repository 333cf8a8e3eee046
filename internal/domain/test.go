package domain

// Marker kinds recognised in doc comments, e.g. "//minunit:test"
const (
	MarkerPrefix      = "//minunit:"
	MarkerSuite       = "suite"
	MarkerTest        = "test"
	MarkerBeforeClass = "beforeclass"
	MarkerAfterClass  = "afterclass"
	MarkerBefore      = "before"
	MarkerAfter       = "after"
)

// FuncRef points at a marked top-level function
type FuncRef struct {
	Name         string // Go identifier of the function
	ReturnsError bool   // true for func() error, false for func()
	Line         int    // Line of the declaration
}

// SuitePlan describes the suite declared by one Go source file
type SuitePlan struct {
	Name        string // Suite name (from //minunit:suite or the file name stem)
	Package     string // Go package name of the file
	FilePath    string // Path to the source file
	BeforeClass *FuncRef
	AfterClass  *FuncRef
	Before      *FuncRef
	After       *FuncRef
	Tests       []FuncRef // Tests in declaration order
}

// Hooks returns the hook references keyed by marker kind, omitting absent ones
func (p *SuitePlan) Hooks() map[string]*FuncRef {
	hooks := make(map[string]*FuncRef, 4)
	for kind, ref := range map[string]*FuncRef{
		MarkerBeforeClass: p.BeforeClass,
		MarkerAfterClass:  p.AfterClass,
		MarkerBefore:      p.Before,
		MarkerAfter:       p.After,
	} {
		if ref != nil {
			hooks[kind] = ref
		}
	}
	return hooks
}
