package recgen

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/CaliLuke/go-records/beans"
)

// --- Participle grammar structs ---
// These define the record declaration grammar using struct tags.

// RecFile is the top-level grammar: any number of record declarations.
type RecFile struct {
	Records []*RecordDef `parser:"@@*"`
}

// RecordDef parses: record name ( component [, component]* [,] ) ;
type RecordDef struct {
	Pos        lexer.Position
	Name       string          `parser:"'record' @Ident"`
	Components []*ComponentDef `parser:"'(' ( @@ ( ',' @@ )* ','? )? ')' ';'"`
}

// ComponentDef parses: name type [?]
type ComponentDef struct {
	Pos      lexer.Position
	Name     string `parser:"@Ident"`
	Type     string `parser:"@Ident"`
	Optional bool   `parser:"@'?'?"`
}

var recLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
	{Name: "Punct", Pattern: `[(),;?]`},
})

var recParser = participle.MustBuild[RecFile](
	participle.Lexer(recLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(3),
)

// ParseDeclarations parses record declarations from input and validates them.
func ParseDeclarations(input string) (*Declarations, error) {
	return parse("records.rec", input)
}

// ParseFile reads record declarations from the specified file path and
// parses them.
func ParseFile(path string) (*Declarations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read declarations: %w", err)
	}
	return parse(path, string(data))
}

func parse(filename, input string) (*Declarations, error) {
	ast, err := recParser.ParseString(filename, input)
	if err != nil {
		return nil, fmt.Errorf("parse declarations: %w", err)
	}
	return convertAST(ast)
}

// DeclarationError is returned when a syntactically valid declaration cannot
// be turned into a Go record type.
type DeclarationError struct {
	Pos     lexer.Position
	Record  string
	Message string
}

// Error returns the error message for DeclarationError.
func (e *DeclarationError) Error() string {
	return fmt.Sprintf("%s: record %s: %s", e.Pos, e.Record, e.Message)
}

// convertAST converts the participle AST to our domain model, checking
// names and value types on the way.
func convertAST(file *RecFile) (*Declarations, error) {
	decls := &Declarations{}
	goNames := make(map[string]string)

	for _, def := range file.Records {
		goName := ToPascalCase(def.Name)
		if err := beans.ValidateIdentifier(goName, "record"); err != nil {
			return nil, &DeclarationError{Pos: def.Pos, Record: def.Name, Message: err.Error()}
		}
		if prev, dup := goNames[goName]; dup {
			return nil, &DeclarationError{
				Pos:     def.Pos,
				Record:  def.Name,
				Message: fmt.Sprintf("Go type %s already declared by record %s", goName, prev),
			}
		}
		goNames[goName] = def.Name

		spec := RecordSpec{Pos: def.Pos, Name: def.Name}
		seen := make(map[string]bool)
		for _, c := range def.Components {
			if _, ok := ValueTypes[c.Type]; !ok {
				return nil, &DeclarationError{
					Pos:     c.Pos,
					Record:  def.Name,
					Message: fmt.Sprintf("component %s: unknown value type %q", c.Name, c.Type),
				}
			}
			property := ToCamelCase(c.Name)
			if err := beans.ValidateIdentifier(property, "component"); err != nil {
				return nil, &DeclarationError{Pos: c.Pos, Record: def.Name, Message: err.Error()}
			}
			if beans.IsReservedName(property) {
				return nil, &DeclarationError{
					Pos:     c.Pos,
					Record:  def.Name,
					Message: fmt.Sprintf("component %s: %q is a reserved property name", c.Name, property),
				}
			}
			if seen[property] {
				return nil, &DeclarationError{
					Pos:     c.Pos,
					Record:  def.Name,
					Message: fmt.Sprintf("duplicate component %s", c.Name),
				}
			}
			seen[property] = true
			spec.Components = append(spec.Components, ComponentSpec{
				Pos:       c.Pos,
				Name:      c.Name,
				ValueType: c.Type,
				Optional:  c.Optional,
			})
		}
		decls.Records = append(decls.Records, spec)
	}

	return decls, nil
}
