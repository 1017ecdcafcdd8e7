// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

// Clone returns a copy of the config with every section copied, so the
// clone can be mutated without touching the original.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for name, raw := range cfg {
		if section := asSection(raw); section != nil {
			out := make(Section, len(section))
			for key, value := range section {
				out[key] = value
			}
			clone[name] = out
			continue
		}
		clone[name] = raw
	}
	return clone
}

func asSection(raw interface{}) Section {
	switch v := raw.(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}
