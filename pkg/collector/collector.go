// Package collector walks an analysis root and gathers the raw facts that
// metrics and insights read: file, line, and comment counts, struct and
// function declarations, and per-function cyclomatic complexity.
//
// Collected facts are read-only once Collect returns. Metrics must not
// mutate them.
package collector

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/src-d/enry/v2"
)

// goExtension marks files parsed for declaration-level facts.
const goExtension = ".go"

// FunctionFacts describes a single function or method declaration.
type FunctionFacts struct {
	Name       string
	Line       int
	Complexity int
}

// FileFacts holds the per-file data insights analyze.
type FileFacts struct {
	Path      string
	Language  string
	Lines     []string
	Functions []FunctionFacts
}

// Facts is the aggregate of everything gathered in one collection pass.
type Facts struct {
	TotalFiles      int
	TotalLines      int
	CommentLines    int
	TotalClasses    int
	TotalFunctions  int
	TotalComplexity int
	Languages       map[string]int
	Files           []FileFacts
}

// Collector gathers facts from a source tree, skipping excluded paths.
type Collector struct {
	excludes []string
}

// New creates a collector that skips any path containing one of the
// given fragments.
func New(excludes []string) *Collector {
	return &Collector{excludes: excludes}
}

// Collect walks root and returns the gathered facts.
func (c *Collector) Collect(root string) (*Facts, error) {
	facts := &Facts{Languages: make(map[string]int)}

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if entry.IsDir() {
			if rel != "." && (c.excluded(rel) || enry.IsVendor(rel) || enry.IsDotFile(entry.Name())) {
				return filepath.SkipDir
			}

			return nil
		}

		if c.excluded(rel) || enry.IsVendor(rel) || enry.IsDotFile(entry.Name()) {
			return nil
		}

		return c.collectFile(facts, path, rel)
	})
	if walkErr != nil {
		return nil, fmt.Errorf("collect %s: %w", root, walkErr)
	}

	return facts, nil
}

func (c *Collector) excluded(rel string) bool {
	normalized := filepath.ToSlash(rel)

	for _, fragment := range c.excludes {
		if fragment != "" && strings.Contains(normalized, fragment) {
			return true
		}
	}

	return false
}

func (c *Collector) collectFile(facts *Facts, path, rel string) error {
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		return fmt.Errorf("read %s: %w", path, readErr)
	}

	if enry.IsBinary(content) {
		return nil
	}

	lines := splitLines(string(content))

	file := FileFacts{
		Path:     rel,
		Language: enry.GetLanguage(filepath.Base(path), content),
		Lines:    lines,
	}

	facts.TotalFiles++
	facts.TotalLines += len(lines)

	if file.Language != "" {
		facts.Languages[file.Language]++
	}

	if strings.HasSuffix(path, goExtension) {
		collectGoFacts(facts, &file, content)
	}

	facts.Files = append(facts.Files, file)

	return nil
}

// splitLines splits content into lines without a phantom trailing entry
// for the final newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// collectGoFacts parses a Go source file and records declaration-level
// facts. Files that fail to parse still contribute line counts; parse
// errors are not fatal to the collection pass.
func collectGoFacts(facts *Facts, file *FileFacts, content []byte) {
	fset := token.NewFileSet()

	parsed, parseErr := parser.ParseFile(fset, file.Path, content, parser.ParseComments)
	if parseErr != nil {
		return
	}

	for _, group := range parsed.Comments {
		start := fset.Position(group.Pos()).Line
		end := fset.Position(group.End()).Line
		facts.CommentLines += end - start + 1
	}

	for _, decl := range parsed.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			facts.TotalClasses += countStructs(d)
		case *ast.FuncDecl:
			fn := FunctionFacts{
				Name:       d.Name.Name,
				Line:       fset.Position(d.Pos()).Line,
				Complexity: cyclomaticComplexity(d),
			}

			facts.TotalFunctions++
			facts.TotalComplexity += fn.Complexity
			file.Functions = append(file.Functions, fn)
		}
	}
}

func countStructs(decl *ast.GenDecl) int {
	count := 0

	for _, spec := range decl.Specs {
		typeSpec, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}

		if _, isStruct := typeSpec.Type.(*ast.StructType); isStruct {
			count++
		}
	}

	return count
}

// cyclomaticComplexity counts decision points plus one, the classic
// McCabe definition. Default clauses in switch and select are not
// decision points; only case clauses carrying a condition count.
func cyclomaticComplexity(fn *ast.FuncDecl) int {
	complexity := 1

	ast.Inspect(fn, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt:
			complexity++
		case *ast.CaseClause:
			if node.List != nil {
				complexity++
			}
		case *ast.CommClause:
			if node.Comm != nil {
				complexity++
			}
		case *ast.BinaryExpr:
			if node.Op == token.LAND || node.Op == token.LOR {
				complexity++
			}
		}

		return true
	})

	return complexity
}
