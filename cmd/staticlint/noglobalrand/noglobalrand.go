package noglobalrand

import (
	"go/ast"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer is a static analysis tool that reports calls to the package-level
// math/rand functions backed by the shared global source (rand.Intn,
// rand.Seed and the like). Secret numbers must be drawn from an injected
// *rand.Rand so the sequence stays seedable in tests.
var Analyzer = &analysis.Analyzer{
	Name: "noglobalrand",
	Doc:  "prohibits calls to the global math/rand generator",
	Run:  run,
}

// globalGeneratorFuncs lists the math/rand package-level functions that use
// the shared source. Constructors such as New and NewSource are allowed.
var globalGeneratorFuncs = map[string]bool{
	"ExpFloat64":  true,
	"Float32":     true,
	"Float64":     true,
	"Int":         true,
	"Int31":       true,
	"Int31n":      true,
	"Int63":       true,
	"Int63n":      true,
	"Intn":        true,
	"NormFloat64": true,
	"Perm":        true,
	"Read":        true,
	"Seed":        true,
	"Shuffle":     true,
	"Uint32":      true,
	"Uint64":      true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		// Exclude go-build cache files
		filename := pass.Fset.File(file.Pos()).Name()
		if isGoBuildCacheFile(filename) {
			continue
		}

		randPackageName := mathRandName(file)
		if randPackageName == "" {
			continue
		}

		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok || !globalGeneratorFuncs[sel.Sel.Name] {
				return true
			}

			// A non-nil Obj means the identifier resolves to a local
			// declaration shadowing the import, not to the package itself.
			ident, ok := sel.X.(*ast.Ident)
			if ok && ident.Name == randPackageName && ident.Obj == nil {
				pass.Reportf(call.Pos(), "avoid the global math/rand functions; use an injected *rand.Rand")
			}

			return true
		})
	}
	return nil, nil
}

// mathRandName returns the name the file refers to math/rand by, or an empty
// string when the file does not import it under a usable name.
func mathRandName(file *ast.File) string {
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != "math/rand" {
			continue
		}

		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				return ""
			}
			return imp.Name.Name
		}

		return "rand"
	}

	return ""
}

func isGoBuildCacheFile(path string) bool {
	path = filepath.ToSlash(path)
	return strings.Contains(path, "/go-build/") || strings.Contains(path, `\go-build\`)
}
