package extract

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"

	"github.com/guilgui51/keyhub"
)

// defaultFuncNames are the translation call names scanned in Go sources.
var defaultFuncNames = map[string]bool{"T": true, "t": true, "Tr": true}

// GoExtractor discovers keys passed as string literals to translation calls
// (T("ns:key"), t("key")) in Go source files.
type GoExtractor struct {
	funcNames map[string]bool
}

// NewGoExtractor creates a Go source extractor scanning the default call
// names.
func NewGoExtractor() *GoExtractor {
	return &GoExtractor{funcNames: defaultFuncNames}
}

// NewGoExtractorWithFuncs creates a Go source extractor scanning custom call
// names.
func NewGoExtractorWithFuncs(names []string) *GoExtractor {
	funcs := make(map[string]bool, len(names))
	for _, n := range names {
		funcs[n] = true
	}
	return &GoExtractor{funcNames: funcs}
}

// Extensions returns the file extensions handled by the extractor.
func (e *GoExtractor) Extensions() []string {
	return []string{".go"}
}

// Extract parses Go source and collects keys from translation calls.
func (e *GoExtractor) Extract(content string) ([]Key, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", content, 0)
	if err != nil {
		return nil, &keyhub.CatalogError{Message: "parsing Go source", Cause: err}
	}

	var keys []Key
	ast.Inspect(file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}
		if !e.isTranslationCall(call.Fun) {
			return true
		}
		lit, ok := call.Args[0].(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return true
		}
		value, err := strconv.Unquote(lit.Value)
		if err != nil {
			return true
		}
		if k, ok := splitKey(value); ok {
			keys = append(keys, k)
		}
		return true
	})
	return keys, nil
}

// isTranslationCall matches plain calls (T(...)) and method calls (i18n.T(...)).
func (e *GoExtractor) isTranslationCall(fun ast.Expr) bool {
	switch f := fun.(type) {
	case *ast.Ident:
		return e.funcNames[f.Name]
	case *ast.SelectorExpr:
		return e.funcNames[f.Sel.Name]
	}
	return false
}

// Verify GoExtractor implements Extractor
var _ Extractor = (*GoExtractor)(nil)
