package configs

// Configurable is implemented by values read from config files
type Configurable interface {
	// cue path of the value
	ConfigKey() string
}
