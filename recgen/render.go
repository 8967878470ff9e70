package recgen

import (
	"fmt"
	"io"
	"text/template"

	"github.com/alecthomas/participle/v2/lexer"
)

// RenderConfig specifies the settings for generating Go record types.
type RenderConfig struct {
	// PackageName is the name of the Go package for the generated code.
	PackageName string
	// ModulePath is the import path of the 'records' package.
	ModulePath string
	// UseAcronyms, if true, applies Go acronym naming conventions (e.g., 'ID' instead of 'Id').
	UseAcronyms bool
	// Constructors, if true, generates a New<Record> canonical constructor per record.
	Constructors bool
	// Withers, if true, generates a With<Component> method per component.
	Withers bool
	// Source is an optional file name included in the generated header.
	Source string
}

// DefaultConfig returns a standard RenderConfig with sensible defaults.
func DefaultConfig() RenderConfig {
	return RenderConfig{
		PackageName:  "models",
		ModulePath:   "github.com/CaliLuke/go-records/records",
		UseAcronyms:  true,
		Constructors: true,
		Withers:      true,
	}
}

// Render writes the generated Go source code for decls to w.
func Render(w io.Writer, decls *Declarations, cfg RenderConfig) error {
	if cfg.PackageName == "" {
		cfg.PackageName = "models"
	}
	if cfg.ModulePath == "" {
		cfg.ModulePath = "github.com/CaliLuke/go-records/records"
	}

	data := &renderData{
		PackageName:  cfg.PackageName,
		ModulePath:   cfg.ModulePath,
		Source:       cfg.Source,
		Constructors: cfg.Constructors,
		Withers:      cfg.Withers,
	}
	for _, r := range decls.Records {
		rc := buildRecordCtx(r, cfg)
		for _, c := range r.Components {
			if c.ValueType == "datetime" {
				data.NeedsTime = true
			}
		}
		data.Records = append(data.Records, rc)
	}
	if err := checkGoNames(decls, data.Records, cfg); err != nil {
		return err
	}

	return renderTemplate.Execute(w, data)
}

// checkGoNames rejects declarations whose generated identifiers would
// collide under cfg. ctxs must be built from decls, in the same order.
func checkGoNames(decls *Declarations, ctxs []recordCtx, cfg RenderConfig) error {
	// package-level identifier -> what declared it
	pkgNames := make(map[string]string)
	for i, rc := range ctxs {
		spec := decls.Records[i]
		fail := func(pos lexer.Position, format string, args ...any) error {
			return &DeclarationError{Pos: pos, Record: spec.Name, Message: fmt.Sprintf(format, args...)}
		}

		if prev, dup := pkgNames[rc.GoName]; dup {
			return fail(spec.Pos, "Go type %s collides with %s", rc.GoName, prev)
		}
		pkgNames[rc.GoName] = "record " + spec.Name
		if cfg.Constructors {
			ctor := "New" + rc.GoName
			if prev, dup := pkgNames[ctor]; dup {
				return fail(spec.Pos, "constructor %s collides with %s", ctor, prev)
			}
			pkgNames[ctor] = "constructor of record " + spec.Name
		}

		fields := map[string]string{"Record": "the embedded records.Record"}
		params := make(map[string]string)
		for j, c := range rc.Components {
			comp := spec.Components[j]
			if prev, dup := fields[c.GoName]; dup {
				return fail(comp.Pos, "component %s: Go field %s collides with %s", comp.Name, c.GoName, prev)
			}
			fields[c.GoName] = "component " + comp.Name
			if prev, dup := params[c.Param]; dup {
				return fail(comp.Pos, "component %s: parameter %s collides with %s", comp.Name, c.Param, prev)
			}
			params[c.Param] = "component " + comp.Name
		}
		if !cfg.Withers {
			continue
		}
		for j, c := range rc.Components {
			comp := spec.Components[j]
			method := "With" + c.GoName
			if prev, dup := fields[method]; dup {
				return fail(comp.Pos, "component %s: method %s collides with %s", comp.Name, method, prev)
			}
		}
	}
	return nil
}

// --- Template context types ---

type renderData struct {
	PackageName  string
	ModulePath   string
	Source       string
	NeedsTime    bool
	Constructors bool
	Withers      bool
	Records      []recordCtx
}

type recordCtx struct {
	GoName     string
	Name       string // declared name
	Components []componentCtx
}

type componentCtx struct {
	GoName   string
	GoType   string
	Param    string
	Property string
	Tag      string
}

func buildRecordCtx(r RecordSpec, cfg RenderConfig) recordCtx {
	ctx := recordCtx{
		GoName: goName(r.Name, cfg),
		Name:   r.Name,
	}
	for _, c := range r.Components {
		property := ToCamelCase(c.Name)
		goType := ValueTypes[c.ValueType]
		if c.Optional {
			goType = "*" + goType
		}
		ctx.Components = append(ctx.Components, componentCtx{
			GoName:   goName(c.Name, cfg),
			GoType:   goType,
			Param:    paramName(c.Name),
			Property: property,
			Tag:      "`beans:\"" + property + "\"`",
		})
	}
	return ctx
}

func goName(name string, cfg RenderConfig) string {
	if cfg.UseAcronyms {
		return ToPascalCaseAcronyms(name)
	}
	return ToPascalCase(name)
}

// --- Go template ---

var renderTemplate = template.Must(template.New("records").Parse(`// Code generated by recgen. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.PackageName}}

import (
{{- if .NeedsTime}}
	"time"
{{- end}}
	records "{{.ModulePath}}"
)
{{range $r := .Records}}
// {{$r.GoName}} is the "{{$r.Name}}" record.
type {{$r.GoName}} struct {
	records.Record
{{- range $r.Components}}
	{{.GoName}} {{.GoType}} {{.Tag}}
{{- end}}
}
{{- if $.Constructors}}

// New{{$r.GoName}} creates a {{$r.GoName}} from its components.
func New{{$r.GoName}}({{range $i, $c := $r.Components}}{{if $i}}, {{end}}{{$c.Param}} {{$c.GoType}}{{end}}) {{$r.GoName}} {
	return {{$r.GoName}}{ {{- range $i, $c := $r.Components}}{{if $i}}, {{end}}{{$c.GoName}}: {{$c.Param}}{{end -}} }
}
{{- end}}
{{- if $.Withers}}
{{- range $r.Components}}

// With{{.GoName}} returns a copy of the record with {{.Property}} replaced.
func (r {{$r.GoName}}) With{{.GoName}}({{.Param}} {{.GoType}}) {{$r.GoName}} {
	r.{{.GoName}} = {{.Param}}
	return r
}
{{- end}}
{{- end}}
{{end}}`))
