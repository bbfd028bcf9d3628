package config

import (
	"github.com/arthur-debert/graftree/pkg/errors"
	"github.com/arthur-debert/graftree/pkg/types"
)

// Settings is the resolved configuration for a graft run
type Settings struct {
	Mode    types.Mode `koanf:"mode" toml:"mode"`
	Include []string   `koanf:"include" toml:"include"`
	Exclude []string   `koanf:"exclude" toml:"exclude"`
	Jobs    int        `koanf:"jobs" toml:"jobs"`
}

// Overrides are values given on the command line. Zero values leave the
// resolved settings alone.
type Overrides struct {
	Mode string
	// Symlink forces symlink mode
	Symlink bool
	// Include and Exclude are appended to the resolved lists
	Include []string
	Exclude []string
	Jobs    int
}

// scalars returns the overrides that replace settings outright
func (o Overrides) scalars() map[string]interface{} {
	m := map[string]interface{}{}
	if o.Mode != "" {
		m["mode"] = o.Mode
	}
	if o.Symlink {
		m["mode"] = string(types.ModeSymlink)
	}
	if o.Jobs > 0 {
		m["jobs"] = o.Jobs
	}
	return m
}

// appendLists adds the command-line patterns after the resolved ones
func (o Overrides) appendLists(s *Settings) {
	s.Include = append(s.Include, o.Include...)
	s.Exclude = append(s.Exclude, o.Exclude...)
}

// Validate normalizes s and rejects values no run can use
func (s *Settings) Validate() error {
	mode, err := types.ParseMode(string(s.Mode))
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid mode %q", s.Mode).
			WithDetail("mode", string(s.Mode))
	}
	s.Mode = mode

	if s.Jobs < 0 {
		return errors.Newf(errors.ErrConfigValid, "jobs must not be negative, got %d", s.Jobs).
			WithDetail("jobs", s.Jobs)
	}
	if s.Jobs == 0 {
		s.Jobs = 1
	}

	if s.Include == nil {
		s.Include = []string{}
	}
	if s.Exclude == nil {
		s.Exclude = []string{}
	}
	return nil
}
