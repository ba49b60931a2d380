// Package config is responsible for finding, parsing and merging the brainz user
// configuration with the default one.
//
// The user configuration is in $HOME/.brainz/config.json unless another file is
// given explicitly. It is a JSON object with any of the keys of Config. Keys which
// are missing or have zero values keep their defaults.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"reflect"
	"time"

	"github.com/ironsmile/brainz/src/gate"
	"github.com/ironsmile/brainz/src/helpers"
	"github.com/ironsmile/brainz/src/musicbrainz"
	"github.com/spf13/afero"
)

// ConfigName is the file name of the user configuration in the user path.
const ConfigName = "config.json"

// MinRequestInterval is the shortest allowed time between two requests, in
// milliseconds. The MusicBrainz web service allows one request per second.
const MinRequestInterval = 1000

// Config is the configuration type. Should contain representation for everything
// in config.json
type Config struct {
	// APIURL is the address of the MusicBrainz web service, including the /ws/2 part.
	APIURL string `json:"api_url"`

	// Contact is included in the User-Agent header of every request. MusicBrainz
	// asks for an e-mail or a URL.
	Contact string `json:"contact"`

	// RequestInterval is the minimal time between requests in milliseconds.
	RequestInterval int `json:"request_interval"`

	// Timeout for a single request in seconds.
	Timeout int `json:"timeout"`

	// LogFile is a file to which logs are appended. Relative paths are relative
	// to the user path.
	LogFile string `json:"log_file"`

	// DefaultLimit replaces the default number of results of the listing commands
	// when set.
	DefaultLimit int `json:"default_limit"`
}

// Defaults returns the configuration used when there is no user configuration.
func Defaults() Config {
	return Config{
		APIURL:          musicbrainz.DefaultAPIURL,
		Contact:         "https://github.com/ironsmile/brainz",
		RequestInterval: int(gate.DefaultInterval / time.Millisecond),
		Timeout:         int(musicbrainz.DefaultTimeout / time.Second),
	}
}

// FindAndParse reads the configuration file at `path` and merges it on top the
// default configuration. An empty `path` means the user configuration file, which
// may be missing. A file given explicitly must exist.
func FindAndParse(afs afero.Fs, path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		var err error
		path, err = UserConfigPath()
		if err != nil {
			log.Printf("Not using user configuration: %s\n", err)
			return cfg, nil
		}
	}

	usrCfg, err := parse(afs, path)
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		log.Printf("No configuration found in %s, using defaults\n", path)
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}

	cfg.merge(usrCfg)
	cfg.normalize()

	return cfg, nil
}

// parse reads a JSON file and populates a config with it. Unknown keys are errors
// so that typos do not go unnoticed.
func parse(afs afero.Fs, filename string) (*Config, error) {
	data, err := afero.ReadFile(afs, filename)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	cfg := new(Config)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	return cfg, nil
}

// Merges an other config on top of itself. Only non-zero values will be merged.
func (cfg *Config) merge(merged *Config) {
	cfgVal := reflect.ValueOf(cfg).Elem()
	mergedVal := reflect.ValueOf(merged).Elem()

	for i := 0; i < mergedVal.NumField(); i++ {
		mergedField := mergedVal.Field(i)
		if !mergedField.IsValid() || mergedField.IsZero() {
			continue
		}

		cfgField := cfgVal.Field(i)
		if !cfgField.CanSet() {
			continue
		}

		cfgField.Set(mergedField)
	}
}

func (cfg *Config) normalize() {
	if cfg.RequestInterval < MinRequestInterval {
		log.Printf(
			"Request interval of %dms is too short, using %dms\n",
			cfg.RequestInterval,
			MinRequestInterval,
		)
		cfg.RequestInterval = MinRequestInterval
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = int(musicbrainz.DefaultTimeout / time.Second)
	}

	if cfg.DefaultLimit < 0 {
		cfg.DefaultLimit = 0
	}
}

// Interval returns the request interval as a duration.
func (cfg Config) Interval() time.Duration {
	return time.Duration(cfg.RequestInterval) * time.Millisecond
}

// TimeoutDuration returns the request timeout as a duration.
func (cfg Config) TimeoutDuration() time.Duration {
	return time.Duration(cfg.Timeout) * time.Second
}

// Limit returns `commandDefault` unless the configuration has a default limit.
func (cfg Config) Limit(commandDefault int) int {
	if cfg.DefaultLimit > 0 {
		return cfg.DefaultLimit
	}
	return commandDefault
}

// LogFilePath returns the full path to the log file. Empty string means logs are
// not written in a file.
func (cfg Config) LogFilePath() string {
	if cfg.LogFile == "" {
		return ""
	}

	userPath, err := helpers.ProjectUserPath()
	if err != nil {
		return cfg.LogFile
	}

	return helpers.AbsolutePath(cfg.LogFile, userPath)
}

// UserConfigPath returns the full path to the place where the user's configuration
// file should be.
func UserConfigPath() (string, error) {
	path, err := helpers.ProjectUserPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(path, ConfigName), nil
}

// Write stores `cfg` as JSON in `path`, creating its directory when needed. It
// refuses to overwrite an existing file.
func Write(afs afero.Fs, path string, cfg Config) error {
	if _, err := afs.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, fs.ErrExist)
	}

	if err := afs.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return afero.WriteFile(afs, path, append(data, '\n'), 0640)
}
