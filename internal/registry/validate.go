package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/rteopts/internal/ctxlog"
)

// ValidateRegistry checks that every registered strategy, and the fallback,
// provides all of its hooks.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, prefix := range r.Prefixes() {
		s := r.entries[prefix].strategy
		if err := s.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("prefix '%s': %s", prefix, strings.ReplaceAll(err.Error(), "\n", "; ")))
			continue
		}
		if s.Synthesizer.ArchValue == nil {
			logger.Debug("Strategy leaves Arch options untouched.", "prefix", prefix, "strategy", s.Name)
		}
	}
	if err := r.fallback.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("fallback: %s", strings.ReplaceAll(err.Error(), "\n", "; ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
