package scenario

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("errname", func(fl validator.FieldLevel) bool {
		return errors.ByName(fl.Field().String()) != nil
	})
	return v
}

// LoadFile reads the scenarios in the YAML file at path.
func LoadFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, path)
}

// Load reads scenarios from r. name labels the source in errors and in
// each scenario's File field.
func Load(r io.Reader, name string) ([]Scenario, error) {
	var scenarios []Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&scenarios); err != nil && !errors.Is(err, io.EOF) {
		return nil, &errors.GameError{Err: errors.Wrap(errors.ErrScenario, err.Error()), File: name}
	}

	seen := make(map[string]bool, len(scenarios))
	for i := range scenarios {
		sc := &scenarios[i]
		sc.File = name
		if err := Validate(sc); err != nil {
			return nil, &errors.GameError{Err: err, Scenario: sc.Name, File: name}
		}
		if seen[sc.Name] {
			return nil, &errors.GameError{
				Err:      errors.Wrap(errors.ErrScenario, "duplicate scenario name"),
				Scenario: sc.Name,
				File:     name,
			}
		}
		seen[sc.Name] = true
	}
	return scenarios, nil
}

// Validate checks a scenario's fields, including that its start position
// and expected board are well-formed board strings.
func Validate(sc *Scenario) error {
	if err := validate.Struct(sc); err != nil {
		return errors.Wrap(errors.ErrScenario, describe(err))
	}
	if sc.Start != "" && sc.Start != StandardStart {
		if _, err := notation.ParseBoardString(sc.Start); err != nil {
			return errors.Wrap(err, "start")
		}
	}
	if sc.Expect.Board != "" {
		if _, err := notation.ParseBoardString(sc.Expect.Board); err != nil {
			return errors.Wrap(err, "expect.board")
		}
	}
	return nil
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Namespace()+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Namespace(), fe.Param()))
		case "errname":
			msgs = append(msgs, fmt.Sprintf("%s: unknown error %q (known: %s)",
				fe.Namespace(), fe.Value(), strings.Join(errors.Names(), ", ")))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
