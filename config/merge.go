package config

// mergeConfigs merges override configuration into base
func mergeConfigs(base, override *Config) *Config {
	result := *base

	// Merge version
	if override.Version != "" {
		result.Version = override.Version
	}

	// Merge theme
	if override.Theme != "" {
		result.Theme = override.Theme
	}

	// Merge menu settings
	result.Menu = mergeMenu(result.Menu, override.Menu)

	// Merge extensions
	if override.Extensions != nil {
		if result.Extensions == nil {
			result.Extensions = make(map[string]interface{})
		}
		for key, value := range override.Extensions {
			// If both base and override have the same extension key, merge them
			if baseValue, exists := result.Extensions[key]; exists {
				if baseMap, baseOk := baseValue.(map[string]interface{}); baseOk {
					if overrideMap, overrideOk := value.(map[string]interface{}); overrideOk {
						// Merge the maps
						mergedMap := make(map[string]interface{})
						for k, v := range baseMap {
							mergedMap[k] = v
						}
						for k, v := range overrideMap {
							mergedMap[k] = v
						}
						result.Extensions[key] = mergedMap
						continue
					}
				}
			}
			// Otherwise just replace
			result.Extensions[key] = value
		}
	}

	return &result
}

func mergeMenu(base, override *MenuConfig) *MenuConfig {
	if override == nil {
		return base
	}
	if base == nil {
		merged := *override
		return &merged
	}

	result := *base
	if override.Mode != "" {
		result.Mode = override.Mode
	}
	if override.ClearScreen != nil {
		result.ClearScreen = override.ClearScreen
	}
	if override.IncludeExit != nil {
		result.IncludeExit = override.IncludeExit
	}
	return &result
}
