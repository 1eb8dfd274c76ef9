package config

// DefaultThreshold is the number of entries a linear storage may hold before the
// container escapes to a hashmap.
const DefaultThreshold = 128

// Config holds settings of the container: the representation switching point and
// pre-allocations.
//
// You should modify defaults (returned via Default()) rather than initialize the config
// manually. However, a manually initialized config is passed through Fill before use, so
// zero fields are replaced by their default values.
type Config struct {
	// Threshold is the number of entries at which the linear storage is converted into the
	// hashmap upon the next insertion. Linear search is generally faster for a small amount of
	// entries, as it skips hashing and is friendly to the cache, however it degrades quickly as
	// the number of entries grows. Non-positive values are replaced by DefaultThreshold.
	Threshold int
	// Prealloc is the expected number of entries. If it is below the Threshold, the container
	// starts as a linear storage of such capacity, otherwise it starts right away as a hashmap.
	// The representation is chosen once, at construction time.
	Prealloc int `test:"nullable"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Threshold: DefaultThreshold,
		Prealloc:  0,
	}
}

// Fill returns a copy of the config, where every unset field is filled with its default
// value. A nil config results in Default().
func Fill(original *Config) *Config {
	defaultConfig := Default()
	if original == nil {
		return defaultConfig
	}

	filled := *original
	filled.Threshold = customOrDefault(filled.Threshold, defaultConfig.Threshold)
	filled.Prealloc = max(filled.Prealloc, 0)

	return &filled
}

func customOrDefault(custom, defaultVal int) int {
	if custom <= 0 {
		return defaultVal
	}

	return custom
}
