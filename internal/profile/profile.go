// Package profile reads the shared Nimbus configuration file
// (~/.nimbus/config.toml by default) used by the region and credentials
// provider chains. The file is TOML with a single [profile] table:
//
//	[profile]
//	region            = "us-west-2"
//	access_key_id     = "NKIAEXAMPLE"
//	secret_access_key = "secret"
//
// The location can be overridden with the NIMBUS_CONFIG_FILE environment
// variable.
package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvConfigFile overrides the shared configuration file location when set.
const EnvConfigFile = "NIMBUS_CONFIG_FILE"

// Profile holds the values parsed from the [profile] table. Empty fields mean
// the key was not present in the file.
type Profile struct {
	Region          string `toml:"region"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
}

type configFile struct {
	Profile Profile `toml:"profile"`
}

// DefaultPath returns the shared configuration file location: the value of
// NIMBUS_CONFIG_FILE if set, otherwise ~/.nimbus/config.toml. The second
// return value is false when neither can be determined (no home directory).
func DefaultPath() (string, bool) {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".nimbus", "config.toml"), true
}

// Load parses the shared configuration file at path. A missing file is not an
// error; it yields an empty Profile so provider chains can fall through.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Profile{}, nil
		}
		return Profile{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var file configFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Profile{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return file.Profile, nil
}
