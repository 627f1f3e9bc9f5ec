package environment

import (
	"errors"
	"fmt"
	"strings"
)

// Environment is a deployment environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ErrUnknownEnvironment is returned for names Parse does not recognize.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Parse returns the environment named s. Short forms (dev, stage, prod)
// are accepted and matching ignores case.
func Parse(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev", "local":
		return Development, nil
	case "staging", "stage":
		return Staging, nil
	case "production", "prod":
		return Production, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Environment) UnmarshalText(text []byte) error {
	env, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = env
	return nil
}

func (e Environment) String() string { return string(e) }

// IsDevelopment reports whether e is Development. The zero value counts as
// development.
func (e Environment) IsDevelopment() bool { return e == Development || e == "" }

// IsProduction reports whether e is Production.
func (e Environment) IsProduction() bool { return e == Production }
