package recgen

import (
	"bytes"
	"errors"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"
)

func renderString(t *testing.T, decls *Declarations, cfg RenderConfig) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, decls, cfg); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := format.Source(buf.Bytes()); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, buf.String())
	}
	typeCheck(t, buf.String(), cfg)
	return buf.String()
}

// stubImporter serves minimal stand-ins for the packages generated code
// imports, each declaring a single empty struct type.
type stubImporter map[string]*types.Package

func (s stubImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := s[path]; ok {
		return pkg, nil
	}
	return nil, errors.New("unexpected import " + path)
}

func stubPackage(path, name, typeName string) *types.Package {
	pkg := types.NewPackage(path, name)
	obj := types.NewTypeName(token.NoPos, pkg, typeName, nil)
	types.NewNamed(obj, types.NewStruct(nil, nil), nil)
	pkg.Scope().Insert(obj)
	pkg.MarkComplete()
	return pkg
}

func typeCheck(t *testing.T, src string, cfg RenderConfig) {
	t.Helper()
	modulePath := cfg.ModulePath
	if modulePath == "" {
		modulePath = DefaultConfig().ModulePath
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "records_gen.go", src, 0)
	if err != nil {
		t.Fatalf("parse generated code: %v", err)
	}
	conf := types.Config{Importer: stubImporter{
		"time":     stubPackage("time", "time", "Time"),
		modulePath: stubPackage(modulePath, "records", "Record"),
	}}
	if _, err := conf.Check(cfg.PackageName, fset, []*ast.File{file}, nil); err != nil {
		t.Fatalf("generated code does not type-check: %v\n%s", err, src)
	}
}

func assertContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Errorf("missing %q in output:\n%s", want, out)
	}
}

func TestRenderRecord(t *testing.T) {
	decls := &Declarations{
		Records: []RecordSpec{
			{Name: "point", Components: []ComponentSpec{
				{Name: "x", ValueType: "integer"},
				{Name: "y", ValueType: "integer"},
			}},
		},
	}

	out := renderString(t, decls, DefaultConfig())

	assertContains(t, out, "// Code generated by recgen. DO NOT EDIT.")
	assertContains(t, out, "package models")
	assertContains(t, out, `"github.com/CaliLuke/go-records/records"`)
	assertContains(t, out, "type Point struct {\n\trecords.Record\n")
	assertContains(t, out, "X int64 `beans:\"x\"`")
	assertContains(t, out, "Y int64 `beans:\"y\"`")
	assertContains(t, out, "func NewPoint(x int64, y int64) Point {")
	assertContains(t, out, "return Point{X: x, Y: y}")
	assertContains(t, out, "func (r Point) WithX(x int64) Point {")
	assertContains(t, out, "func (r Point) WithY(y int64) Point {")

	if strings.Contains(out, `"time"`) {
		t.Errorf("time should not be imported without datetime components\n%s", out)
	}
}

func TestRenderDeclarations(t *testing.T) {
	decls, err := ParseDeclarations(testDeclarations)
	if err != nil {
		t.Fatalf("ParseDeclarations: %v", err)
	}
	cfg := DefaultConfig()
	cfg.PackageName = "people"
	cfg.Source = "people.rec"

	out := renderString(t, decls, cfg)

	assertContains(t, out, "// Source: people.rec")
	assertContains(t, out, "package people")
	assertContains(t, out, `"time"`)
	assertContains(t, out, "BirthDate *time.Time `beans:\"birthDate\"`")
	assertContains(t, out, "UserID string `beans:\"userId\"`")
	assertContains(t, out, "func NewPerson(name string, birthDate *time.Time, userID string) Person {")
	assertContains(t, out, "func (r Person) WithBirthDate(birthDate *time.Time) Person {")
	assertContains(t, out, "func NewEmpty() Empty {")
	assertContains(t, out, "return Empty{}")
}

func TestRenderDisabledFeatures(t *testing.T) {
	decls := &Declarations{
		Records: []RecordSpec{
			{Name: "user", Components: []ComponentSpec{{Name: "user_id", ValueType: "string"}}},
		},
	}
	cfg := DefaultConfig()
	cfg.Constructors = false
	cfg.Withers = false
	cfg.UseAcronyms = false

	out := renderString(t, decls, cfg)

	assertContains(t, out, "UserId string `beans:\"userId\"`")
	if strings.Contains(out, "func NewUser") {
		t.Errorf("constructor should be suppressed when Constructors=false\n%s", out)
	}
	if strings.Contains(out, "WithUserId") {
		t.Errorf("withers should be suppressed when Withers=false\n%s", out)
	}
}

func TestRenderKeywordComponent(t *testing.T) {
	decls, err := ParseDeclarations(`record tagged(type string, r integer);`)
	if err != nil {
		t.Fatalf("ParseDeclarations: %v", err)
	}

	out := renderString(t, decls, DefaultConfig())

	assertContains(t, out, "func NewTagged(typeValue string, rValue int64) Tagged {")
	assertContains(t, out, "func (r Tagged) WithR(rValue int64) Tagged {")
	assertContains(t, out, "r.R = rValue")
}

func TestBuildRecordCtx(t *testing.T) {
	spec := RecordSpec{Name: "api-key", Components: []ComponentSpec{
		{Name: "home_url", ValueType: "string", Optional: true},
		{Name: "score", ValueType: "double"},
	}}

	ctx := buildRecordCtx(spec, RenderConfig{UseAcronyms: true})

	if ctx.GoName != "APIKey" {
		t.Errorf("GoName = %q, want %q", ctx.GoName, "APIKey")
	}
	if ctx.Components[0].GoName != "HomeURL" {
		t.Errorf("Components[0].GoName = %q, want %q", ctx.Components[0].GoName, "HomeURL")
	}
	if ctx.Components[0].GoType != "*string" {
		t.Errorf("Components[0].GoType = %q, want %q", ctx.Components[0].GoType, "*string")
	}
	if ctx.Components[1].GoType != "float64" {
		t.Errorf("Components[1].GoType = %q, want %q", ctx.Components[1].GoType, "float64")
	}
	if ctx.Components[1].Property != "score" {
		t.Errorf("Components[1].Property = %q, want %q", ctx.Components[1].Property, "score")
	}
}

func TestRenderModulePathAlias(t *testing.T) {
	decls, err := ParseDeclarations(`record point(x integer);`)
	if err != nil {
		t.Fatalf("ParseDeclarations: %v", err)
	}
	cfg := DefaultConfig()
	cfg.ModulePath = "example.com/vendor/go-records-v2/recs"

	out := renderString(t, decls, cfg)

	assertContains(t, out, `records "example.com/vendor/go-records-v2/recs"`)
	assertContains(t, out, "\trecords.Record\n")
}

func TestRenderNameCollisions(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		cfg     func(*RenderConfig)
		message string
	}{
		{"acronym fields", `record a(id string, i-d string);`, nil, "Go field ID collides with component id"},
		{"embedded marker", `record b(record string);`, nil, "Go field Record collides with the embedded records.Record"},
		{"wither and field", `record c(x integer, with-x integer);`, nil, "method WithX collides with component with-x"},
		{"keyword parameter", `record d(type string, type-value string);`, nil, "parameter typeValue collides with component type"},
		{"acronym types", "record api-key();\nrecord a-p-i-key();", nil, "Go type APIKey collides with record api-key"},
		{"constructor and type", "record point();\nrecord new-point();", nil, "Go type NewPoint collides with constructor of record point"},
		{"type and constructor", "record new-point();\nrecord point();", nil, "constructor NewPoint collides with record new-point"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls, err := ParseDeclarations(tt.input)
			if err != nil {
				t.Fatalf("ParseDeclarations: %v", err)
			}
			var buf bytes.Buffer
			err = Render(&buf, decls, DefaultConfig())
			var de *DeclarationError
			if !errors.As(err, &de) {
				t.Fatalf("expected DeclarationError, got %T: %v\n%s", err, err, buf.String())
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("expected %q to contain %q", err.Error(), tt.message)
			}
			if buf.Len() != 0 {
				t.Errorf("expected no output on error, got:\n%s", buf.String())
			}
		})
	}
}

func TestRenderCollisionsDependOnConfig(t *testing.T) {
	// Distinct without acronyms: ApiKey and APIKey.
	decls, err := ParseDeclarations("record api-key();\nrecord a-p-i-key();")
	if err != nil {
		t.Fatalf("ParseDeclarations: %v", err)
	}
	cfg := DefaultConfig()
	cfg.UseAcronyms = false
	renderString(t, decls, cfg)

	// No constructors, no clash with a NewPoint type.
	decls, err = ParseDeclarations("record point();\nrecord new-point();")
	if err != nil {
		t.Fatalf("ParseDeclarations: %v", err)
	}
	cfg = DefaultConfig()
	cfg.Constructors = false
	renderString(t, decls, cfg)

	// No withers, no clash between WithX field and method.
	decls, err = ParseDeclarations(`record c(x integer, with-x integer);`)
	if err != nil {
		t.Fatalf("ParseDeclarations: %v", err)
	}
	cfg = DefaultConfig()
	cfg.Withers = false
	renderString(t, decls, cfg)
}
