package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/rteopts/internal/optionid"
)

// ErrNoConfigurations is returned when the settings files declare nothing to
// resolve.
var ErrNoConfigurations = errors.New("no configurations found")

// Validate checks the model for structural problems. All problems are
// reported at once.
func (m *Model) Validate() error {
	if m == nil || len(m.Configurations) == 0 {
		return ErrNoConfigurations
	}

	var errs []string
	names := make(map[string]string)
	for i, c := range m.Configurations {
		if c == nil {
			errs = append(errs, fmt.Sprintf("configuration #%d is empty", i))
			continue
		}
		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("configuration #%d in %s has no name", i, c.SourceFile))
		} else if first, dup := names[c.Name]; dup {
			errs = append(errs, fmt.Sprintf("configuration '%s' declared in %s is already declared in %s", c.Name, c.SourceFile, first))
		} else {
			names[c.Name] = c.SourceFile
		}
		errs = append(errs, c.problems()...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func (c *Configuration) problems() []string {
	var errs []string

	if c.Toolchain != "" {
		if _, err := optionid.Parse(c.Toolchain); err != nil {
			errs = append(errs, fmt.Sprintf("configuration '%s': invalid toolchain: %v", c.Name, err))
		}
	}

	seen := make(map[string]struct{})
	for _, slot := range c.Options {
		if _, err := optionid.Parse(slot.ID); err != nil {
			errs = append(errs, fmt.Sprintf("configuration '%s': invalid option id: %v", c.Name, err))
			continue
		}
		if _, dup := seen[slot.ID]; dup {
			errs = append(errs, fmt.Sprintf("configuration '%s': option '%s' declared more than once", c.Name, slot.ID))
		}
		seen[slot.ID] = struct{}{}
	}

	for _, r := range c.Memory {
		if r.Name == "" {
			errs = append(errs, fmt.Sprintf("configuration '%s': memory region without a name", c.Name))
			continue
		}
		if r.Size == 0 {
			errs = append(errs, fmt.Sprintf("configuration '%s': memory region '%s' has zero size", c.Name, r.Name))
		}
		if strings.Trim(r.Access, "rwx") != "" || r.Access == "" {
			errs = append(errs, fmt.Sprintf("configuration '%s': memory region '%s' has invalid access %q", c.Name, r.Name, r.Access))
		}
	}
	return errs
}
