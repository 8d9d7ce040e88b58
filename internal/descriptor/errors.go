package descriptor

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigurationError reports a build configuration that cannot produce a
// descriptor. It carries every problem found, not only the first one.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid build configuration: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid build configuration:\n- %s", strings.Join(e.Problems, "\n- "))
}

// problems accumulates validation failures for a single ConfigurationError.
type problems []string

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

// merge adds the problems of a ConfigurationError carried by err.
func (p *problems) merge(err error) {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		*p = append(*p, cfgErr.Problems...)
	}
}

func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}
	return &ConfigurationError{Problems: p}
}
