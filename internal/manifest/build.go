package manifest

import (
	"errors"
	"fmt"

	"uriql/internal/edm"
	"uriql/internal/funcsig"
	"uriql/internal/registry"
)

// Model builds the schema model declared by the manifest.
func (m *Manifest) Model() (*edm.Model, error) {
	cfg := &m.Config
	model := edm.NewModel(cfg.Model.Namespace)

	for _, e := range cfg.Enums {
		def, err := enumType(cfg.Model.Namespace, e)
		if err != nil {
			return nil, fmt.Errorf("%s: enum %s: %w", m.Path, e.Name, err)
		}
		if err := model.AddType(def); err != nil {
			return nil, fmt.Errorf("%s: %w", m.Path, err)
		}
	}
	if err := addStructured(model, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", m.Path, err)
	}
	return model, nil
}

func enumType(ns string, e EnumConfig) (*edm.EnumType, error) {
	underlying := edm.KindInt32
	if e.Underlying != "" {
		k, ok := edm.ParsePrimitiveKind(e.Underlying)
		if !ok || !(k.IsSignedIntegral() || k.IsUnsignedIntegral()) {
			return nil, fmt.Errorf("underlying type %q is not integral", e.Underlying)
		}
		underlying = k
	}
	def := &edm.EnumType{Namespace: ns, Name: e.Name, Underlying: underlying, Flags: e.Flags}
	for i, name := range e.Members {
		v := int64(i)
		if e.Flags {
			v = 1 << i
		}
		def.Members = append(def.Members, edm.EnumMember{Name: name, Value: v})
	}
	return def, nil
}

type pendingStruct struct {
	cfg    StructConfig
	entity bool
}

// addStructured defines complex and entity types; a base may be declared
// after the type deriving from it.
func addStructured(model *edm.Model, cfg *Config) error {
	var pending []pendingStruct
	for _, s := range cfg.Complex {
		pending = append(pending, pendingStruct{cfg: s})
	}
	for _, s := range cfg.Entities {
		pending = append(pending, pendingStruct{cfg: s, entity: true})
	}

	for len(pending) > 0 {
		var rest []pendingStruct
		for _, p := range pending {
			def := &edm.StructuredType{Namespace: cfg.Model.Namespace, Name: p.cfg.Name, Entity: p.entity}
			if p.cfg.Base != "" {
				base, ok := model.FindType(p.cfg.Base)
				if !ok {
					rest = append(rest, p)
					continue
				}
				st, isStruct := base.(*edm.StructuredType)
				if !isStruct || st.Entity != p.entity {
					return fmt.Errorf("type %s: base %s is not a matching structured type", p.cfg.Name, p.cfg.Base)
				}
				def.Base = st
			}
			if err := model.AddType(def); err != nil {
				return err
			}
		}
		if len(rest) == len(pending) {
			// прогресса нет: база не объявлена или цикл
			return fmt.Errorf("type %s: unknown base %s", rest[0].cfg.Name, rest[0].cfg.Base)
		}
		pending = rest
	}
	return nil
}

// Register adds the manifest's literal prefixes and custom functions to
// model. Every entry is attempted; the errors are joined.
func (m *Manifest) Register(model *edm.Model) error {
	var errs []error
	for _, p := range m.Config.Prefixes {
		typ, err := model.ParseTypeRef(p.Type)
		if err == nil {
			err = registry.AddCustomLiteralPrefix(model, p.Name, typ)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: prefix %s: %w", m.Path, p.Name, err))
		}
	}
	for _, f := range m.Config.Functions {
		sig, err := signature(model, f)
		if err == nil {
			err = registry.AddCustomFunction(model, f.Name, sig)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: function %s: %w", m.Path, f.Name, err))
		}
	}
	return errors.Join(errs...)
}

func signature(model *edm.Model, f FunctionConfig) (funcsig.WithReturnType, error) {
	ret, err := model.ParseTypeRef(f.Returns)
	if err != nil {
		return funcsig.WithReturnType{}, err
	}
	args := make([]*edm.TypeRef, len(f.Args))
	for i, a := range f.Args {
		if args[i], err = model.ParseTypeRef(a); err != nil {
			return funcsig.WithReturnType{}, err
		}
	}
	return funcsig.NewFunction(ret, args...), nil
}

// Open builds the model and registers every extension on it.
func (m *Manifest) Open() (*edm.Model, error) {
	model, err := m.Model()
	if err != nil {
		return nil, err
	}
	if err := m.Register(model); err != nil {
		return model, err
	}
	return model, nil
}
