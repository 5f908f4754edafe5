package driver

import (
	"fmt"
	"log/slog"
	"strings"

	"uriql/internal/edm"
	"uriql/internal/lexer"
	"uriql/internal/logs"
	"uriql/internal/manifest"
	"uriql/internal/observ"
	"uriql/internal/registry"
)

// DefaultNamespace names the model used when no manifest is given.
const DefaultNamespace = "Default"

// Session is the model plus registries one CLI invocation works against.
type Session struct {
	Model    *edm.Model
	Manifest *manifest.Manifest // nil без конфигурации
	Log      *slog.Logger
	Timer    *observ.Timer // может быть nil

	// CaseInsensitive folds function names on lookup.
	CaseInsensitive bool
	// Lexer holds the lexer defaults; Prefixes is always the model registry.
	Lexer lexer.Options
}

// SessionOptions configures Open.
type SessionOptions struct {
	ConfigPath string
	Log        *logs.Logger
	Timer      *observ.Timer
}

// Open loads the manifest at opts.ConfigPath, or starts over an empty model
// when the path is empty.
func Open(opts SessionOptions) (*Session, error) {
	log := opts.Log
	if log == nil {
		log = logs.Discard()
	}
	s := &Session{Log: log.Logger, Timer: opts.Timer}

	if opts.ConfigPath == "" {
		s.Model = edm.NewModel(DefaultNamespace)
		s.Lexer.Prefixes = registry.LiteralPrefixesOf(s.Model)
		return s, nil
	}

	idx := s.begin("manifest")
	m, err := manifest.Load(opts.ConfigPath)
	if err != nil {
		s.end(idx, "failed")
		return nil, err
	}
	model, err := m.Open()
	if err != nil {
		s.end(idx, "failed")
		return nil, err
	}
	s.end(idx, m.Path)

	s.Model = model
	s.Manifest = m
	s.CaseInsensitive = m.Config.Lexer.CaseInsensitiveFunctions
	s.Lexer = lexer.Options{
		SemicolonDelimited: m.Config.Lexer.SemicolonDelimited,
		FunctionParameters: m.Config.Lexer.FunctionParameters,
		Prefixes:           registry.LiteralPrefixesOf(model),
	}
	s.Log.Info("manifest loaded",
		"path", m.Path,
		"namespace", model.Namespace,
		"prefixes", len(m.Config.Prefixes),
		"functions", len(m.Config.Functions))
	return s, nil
}

// Match returns the function-name comparison the session uses.
func (s *Session) Match() registry.Match {
	if s.CaseInsensitive {
		return registry.MatchFold
	}
	return registry.MatchExact
}

// ParseType resolves a type name against the session model. "null" stands
// for the untyped null literal and yields nil.
func (s *Session) ParseType(text string) (*edm.TypeRef, error) {
	if strings.EqualFold(strings.TrimSpace(text), "null") {
		return nil, nil
	}
	t, err := s.Model.ParseTypeRef(text)
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", text, err)
	}
	return t, nil
}

// ParseTypes is ParseType over a list.
func (s *Session) ParseTypes(texts []string) ([]*edm.TypeRef, error) {
	out := make([]*edm.TypeRef, len(texts))
	for i, text := range texts {
		t, err := s.ParseType(text)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func (s *Session) begin(name string) int {
	if s.Timer == nil {
		return -1
	}
	return s.Timer.Begin(name)
}

func (s *Session) end(idx int, note string) {
	if s.Timer != nil {
		s.Timer.End(idx, note)
	}
}
