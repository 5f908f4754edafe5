package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"uriql/internal/edm"
	"uriql/internal/lexer"
	"uriql/internal/registry"
	"uriql/internal/token"
)

const sample = `
[model]
namespace = "Sales"

[lexer]
case_insensitive_functions = true

[[enum]]
name = "Color"
members = ["Red", "Green", "Blue"]

[[enum]]
name = "Access"
underlying = "Edm.Byte"
flags = true
members = ["Read", "Write"]

[[entity]]
name = "Employee"
base = "Person"

[[entity]]
name = "Person"

[[complex]]
name = "Address"

[[prefix]]
name = "money"
type = "Edm.Decimal(18,2)"

[[function]]
name = "pad"
returns = "Edm.String"
args = ["Edm.String", "Edm.Int32?"]
`

func TestOpenSample(t *testing.T) {
	m, err := Decode("sample.toml", sample)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Config.Lexer.CaseInsensitiveFunctions {
		t.Fatal("lexer section not decoded")
	}
	model, err := m.Open()
	if err != nil {
		t.Fatal(err)
	}

	access, ok := model.FindType("Access")
	if !ok {
		t.Fatal("Access enum missing")
	}
	if e := access.(*edm.EnumType); e.Underlying != edm.KindByte || e.Members[1].Value != 2 {
		t.Fatalf("flags enum = %+v", e)
	}
	emp, ok := model.FindType("Sales.Employee")
	if !ok || emp.(*edm.StructuredType).Base == nil || emp.(*edm.StructuredType).Base.Name != "Person" {
		t.Fatalf("Employee should derive from Person, got %+v", emp)
	}

	toks, err := lexer.Tokenize("money'12.50'", lexer.Options{Prefixes: registry.LiteralPrefixesOf(model)})
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind != token.CustomTypeLiteral || toks[0].LiteralType.Precision != edm.MakeFacet(18) {
		t.Fatalf("money literal = %+v", toks[0])
	}

	if sigs, ok := registry.CustomFunctionsOf(model).Lookup("pad"); !ok || len(sigs) != 1 || !sigs[0].Arg(1).Nullable {
		t.Fatalf("pad overloads = %v", sigs)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"no model", `[lexer]`, "missing [model]"},
		{"no namespace", "[model]\n", "missing [model].namespace"},
		{"unknown key", "[model]\nnamespace = \"A\"\ncolour = 1\n", "unknown keys: model.colour"},
		{"bad toml", "[model\n", "failed to parse TOML"},
		{"nameless enum", "[model]\nnamespace = \"A\"\n[[enum]]\nmembers = [\"X\"]\n", "[[enum]] #1 has no name"},
		{"incomplete prefix", "[model]\nnamespace = \"A\"\n[[prefix]]\nname = \"x\"\n", "[[prefix]] #1 needs name and type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode("m.toml", tt.data)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Decode error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestModelErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"missing base", "[model]\nnamespace = \"A\"\n[[entity]]\nname = \"B\"\nbase = \"C\"\n", "unknown base C"},
		{"cycle", "[model]\nnamespace = \"A\"\n[[entity]]\nname = \"B\"\nbase = \"C\"\n[[entity]]\nname = \"C\"\nbase = \"B\"\n", "unknown base"},
		{"entity on complex", "[model]\nnamespace = \"A\"\n[[complex]]\nname = \"B\"\n[[entity]]\nname = \"C\"\nbase = \"B\"\n", "not a matching structured type"},
		{"bad underlying", "[model]\nnamespace = \"A\"\n[[enum]]\nname = \"E\"\nunderlying = \"Edm.String\"\n", "not integral"},
		{"duplicate type", "[model]\nnamespace = \"A\"\n[[enum]]\nname = \"E\"\n[[complex]]\nname = \"E\"\n", "already defined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Decode("m.toml", tt.data)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := m.Model(); err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Model error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestRegisterJoinsErrors(t *testing.T) {
	data := `
[model]
namespace = "A"

[[prefix]]
name = "true"
type = "Edm.Int32"

[[prefix]]
name = "ok"
type = "Edm.Int32"

[[function]]
name = "length"
returns = "Edm.Int32"
args = ["Edm.String?"]

[[function]]
name = "f"
returns = "Edm.Nope"
`
	m, err := Decode("m.toml", data)
	if err != nil {
		t.Fatal(err)
	}
	model, err := m.Open()
	if err == nil {
		t.Fatal("expected registration errors")
	}
	if !errors.Is(err, registry.ErrReservedPrefix) || !errors.Is(err, registry.ErrBuiltinSignature) {
		t.Fatalf("joined error lost a cause: %v", err)
	}
	if !strings.Contains(err.Error(), "unknown type") {
		t.Fatalf("type error missing: %v", err)
	}
	// остальные записи всё равно зарегистрированы
	if _, ok := registry.LiteralPrefixesOf(model).LookupLiteralPrefix("ok"); !ok {
		t.Fatal("valid prefix should still be registered")
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, found, err := Find(nested); err != nil || found {
		t.Fatalf("Find before writing = %v, %v", found, err)
	}
	path := filepath.Join(root, FileName)
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	got, found, err := Find(nested)
	if err != nil || !found || got != path {
		t.Fatalf("Find = %q, %v, %v; want %q", got, found, err, path)
	}
	m, err := Load(got)
	if err != nil {
		t.Fatal(err)
	}
	if m.Root != root || m.Config.Model.Namespace != "Sales" {
		t.Fatalf("Load = %+v", m)
	}
}
