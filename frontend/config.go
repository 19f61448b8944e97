package frontend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/kolang-lang/kolang/frontend/lexer"
	"github.com/kolang-lang/kolang/frontend/parser"
)

// ConfigFile is the name of the project file at a workspace root.
const ConfigFile = "kolang.toml"

type KolangToml struct {
	Name     string `toml:"name" validate:"required,ident"`
	Version  string `toml:"version" validate:"required"`
	Src      string `toml:"src" validate:"required"`
	MaxDepth int    `toml:"max_depth" validate:"min=1,max=100000"`
}

// DefaultKolangToml is the configuration `kolang new` writes for name.
func DefaultKolangToml(name string) KolangToml {
	return KolangToml{
		Name:     name,
		Version:  "0.1.0",
		Src:      "src",
		MaxDepth: parser.DefaultMaxDepth,
	}
}

// ParserOptions turns the configuration into parser options.
func (kt KolangToml) ParserOptions() []parser.Option {
	return []parser.Option{parser.WithMaxDepth(kt.MaxDepth)}
}

func (kt KolangToml) Encode() (string, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(kt); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
		return lexer.IsValidIdent(fl.Field().String())
	})
	return validate
}

// HandleKolangToml decodes and validates the contents of a kolang.toml.
// Omitted optional keys take their defaults; unknown keys are an error.
func HandleKolangToml(tomlContent string) (KolangToml, error) {
	var kt KolangToml
	meta, err := toml.Decode(tomlContent, &kt)
	if err != nil {
		return kt, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return kt, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if !meta.IsDefined("src") {
		kt.Src = "src"
	}
	if !meta.IsDefined("max_depth") {
		kt.MaxDepth = parser.DefaultMaxDepth
	}

	if err := newValidator().Struct(kt); err != nil {
		return kt, err
	}
	return kt, nil
}
