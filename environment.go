package asaas

import (
	"fmt"
	"strings"
)

// Environment selects the Asaas deployment a Client talks to.
type Environment string

const (
	Sandbox    Environment = "sandbox"
	Production Environment = "production"
)

const (
	sandboxEndpoint    = "https://sandbox.asaas.com/api/v3"
	productionEndpoint = "https://www.asaas.com/api/v3"
)

// ParseEnvironment accepts "sandbox" or "production", case-insensitively.
func ParseEnvironment(s string) (Environment, error) {
	env := Environment(strings.ToLower(strings.TrimSpace(s)))
	if !env.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
	}

	return env, nil
}

// Valid reports whether e is a known environment.
func (e Environment) Valid() bool {
	return e == Sandbox || e == Production
}

// Endpoint returns the API root of e, or "" for unknown environments.
func (e Environment) Endpoint() string {
	switch e {
	case Sandbox:
		return sandboxEndpoint
	case Production:
		return productionEndpoint
	default:
		return ""
	}
}

func (e Environment) String() string {
	return string(e)
}
