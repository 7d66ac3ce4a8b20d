package config

// Load builds the effective configuration from the defaults, the file at
// path and the environment, in that order. found reports whether the file
// existed. The result is not validated; see Validate.
//
// A bad environment variable is skipped: the returned Config holds every
// other layer and err matches ErrInvalidValue.
func Load(path string) (cfg Config, found bool, err error) {
	cfg = Default()
	if path != "" {
		if found, err = LoadFile(ExpandHome(path), &cfg); err != nil {
			return Default(), found, err
		}
	}
	err = ApplyEnv(&cfg)
	return cfg, found, err
}
