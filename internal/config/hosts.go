package config

import "strings"

// HostNames returns the configured short names.
func (c *Config) HostNames() []string {
	return strings.Fields(c.Hosts)
}

// Resolve produces the fully-qualified fleet for one invocation. A non-empty
// override (the --hosts flag, comma-separated short names) replaces the
// configured default; either way each short name is joined with the common
// domain suffix.
func (c *Config) Resolve(override string) []string {
	var names []string
	if override != "" {
		for _, name := range strings.Split(override, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	} else {
		names = c.HostNames()
	}

	hosts := make([]string, 0, len(names))
	for _, name := range names {
		if c.Common != "" && !strings.Contains(name, ".") {
			hosts = append(hosts, name+"."+c.Common)
		} else {
			hosts = append(hosts, name)
		}
	}
	return hosts
}
