package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"uriql/internal/diagfmt"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--no-config", "--color", "off"}, args...))
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestResolveBinaryPretty(t *testing.T) {
	out, _, err := execute(t, "", "resolve", "binary", "--format", "pretty", "add", "Edm.Int32", "Edm.Int64")
	if err != nil {
		t.Fatalf("resolve binary: %v", err)
	}
	if want := "Edm.Int64 add Edm.Int64 -> Edm.Int64\n"; out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestResolveBinaryFailureCarriesCode(t *testing.T) {
	_, _, err := execute(t, "", "resolve", "binary", "--format", "pretty", "add", "Edm.Boolean", "Edm.Int32")
	if err == nil || !strings.HasPrefix(err.Error(), "RES3001") {
		t.Fatalf("expected RES3001 error, got %v", err)
	}
}

func TestResolveFunctionJSON(t *testing.T) {
	out, _, err := execute(t, "", "resolve", "function", "--format", "json", "substring", "Edm.String", "Edm.Int32")
	if err != nil {
		t.Fatalf("resolve function: %v", err)
	}
	var p resolutionPayload
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if p.Function != "substring" || !strings.HasPrefix(p.Signature, "substring(Edm.String?, Edm.Int32)") {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestTokenizeStdinJSON(t *testing.T) {
	out, _, err := execute(t, "Name eq 'x'\n\n  1 add 2  \n", "tokenize", "--format", "json", "-")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	var exprs []diagfmt.ExpressionOutput
	if err := json.Unmarshal([]byte(out), &exprs); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(exprs) != 2 || exprs[1].Expression != "1 add 2" {
		t.Fatalf("unexpected expressions: %+v", exprs)
	}
}

func TestTokenizeFailureWritesDiagnostics(t *testing.T) {
	_, errOut, err := execute(t, "", "tokenize", "--format", "pretty", "Name eq 'x")
	if err == nil {
		t.Fatal("expected failure for unterminated string")
	}
	if !strings.Contains(errOut, "LEX1002") {
		t.Fatalf("stderr lacks diagnostic code: %q", errOut)
	}
}

func TestExpressions(t *testing.T) {
	got, err := expressions(strings.NewReader("a\n\n b \n"), []string{"-"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1] != "b" {
		t.Fatalf("expressions = %q", got)
	}
	args := []string{"x", "-"}
	if got, _ := expressions(strings.NewReader("ignored"), args); len(got) != 2 {
		t.Fatalf("explicit args must pass through, got %q", got)
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := execute(t, "", "version", "--format", "json", "--full")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var p versionPayload
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if p.Tool != "uriql" || p.Version == "" || p.GitCommit != "unknown" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestFunctionsUnknownName(t *testing.T) {
	if _, _, err := execute(t, "", "functions", "nosuchfn"); err == nil {
		t.Fatal("expected error for unknown function")
	}
}
