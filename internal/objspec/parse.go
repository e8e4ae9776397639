package objspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedArgument indicates a compact description contained an argument
// segment without a key=value form.
var ErrMalformedArgument = errors.New("expected <key>=<value>")

// Parse turns a compact description into a Spec.
//
// The description has the format:
//
//	<class_name>
//	<class_name>:<key>=<value>,<key>=<value>,...
//
// The class name ends at the first ':'; each comma-separated argument splits
// at its first '=' (values may contain '='). Values are inferred as int,
// then float, then kept as string. The format is succinct enough to type on
// a command line.
func Parse(description string) (Spec, error) {
	name, rest, hasArgs := strings.Cut(description, ":")
	args := make(map[string]any)
	if hasArgs {
		for _, raw := range strings.Split(rest, ",") {
			key, value, ok := strings.Cut(raw, "=")
			if !ok {
				return Spec{}, fmt.Errorf("%w, got %q", ErrMalformedArgument, raw)
			}
			args[key] = inferValue(value)
		}
	}
	return Spec{ClassName: name, Args: args}, nil
}

// inferValue converts raw to a number when possible. First successful parse
// wins; there is no implicit bool or null inference.
func inferValue(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
