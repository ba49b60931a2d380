package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/ironsmile/brainz/src/assert"
	"github.com/spf13/afero"
)

func TestFindTheRightConfigFile(t *testing.T) {
	found, err := UserConfigPath()
	if err != nil {
		t.Skipf("no home directory: %s", err)
	}

	if !filepath.IsAbs(found) {
		t.Errorf("User config path was not rooted: %s", found)
	}

	if filepath.Base(found) != ConfigName {
		t.Errorf("User config path was not for %s: %s", ConfigName, found)
	}
}

func TestMergingConfigs(t *testing.T) {
	cfg := Defaults()
	merged := new(Config)

	cfg.merge(merged)
	assert.Equal(t, Defaults(), cfg, "zero values from the merged have been copied over")

	merged.APIURL = "http://localhost:5000/ws/2"
	merged.RequestInterval = 2500
	merged.LogFile = "brainz.log"

	cfg.merge(merged)

	assert.Equal(t, "http://localhost:5000/ws/2", cfg.APIURL)
	assert.Equal(t, 2500, cfg.RequestInterval)
	assert.Equal(t, "brainz.log", cfg.LogFile)
	assert.Equal(t, Defaults().Contact, cfg.Contact)
	assert.Equal(t, Defaults().Timeout, cfg.Timeout)
	assert.Equal(t, 0, cfg.DefaultLimit)
}

func TestFindAndParse(t *testing.T) {
	afs := afero.NewMemMapFs()
	const path = "/etc/brainz.json"

	err := afero.WriteFile(afs, path, []byte(`{
		"contact": "me@example.com",
		"request_interval": 1500,
		"timeout": 5,
		"default_limit": 40
	}`), 0640)
	assert.NilErr(t, err)

	cfg, err := FindAndParse(afs, path)
	assert.NilErr(t, err)

	assert.Equal(t, "me@example.com", cfg.Contact)
	assert.Equal(t, Defaults().APIURL, cfg.APIURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.Interval())
	assert.Equal(t, 5*time.Second, cfg.TimeoutDuration())
	assert.Equal(t, 40, cfg.Limit(10))
	assert.Equal(t, "", cfg.LogFilePath())
}

// TestRequestIntervalFloor makes sure that the configuration cannot make requests
// more often than once per second.
func TestRequestIntervalFloor(t *testing.T) {
	afs := afero.NewMemMapFs()
	const path = "/etc/brainz.json"

	err := afero.WriteFile(afs, path, []byte(`{
		"request_interval": 10,
		"timeout": -3,
		"default_limit": -1
	}`), 0640)
	assert.NilErr(t, err)

	cfg, err := FindAndParse(afs, path)
	assert.NilErr(t, err)

	assert.Equal(t, time.Second, cfg.Interval())
	assert.Equal(t, Defaults().Timeout, cfg.Timeout)
	assert.Equal(t, 25, cfg.Limit(25))
}

func TestFindAndParseErrors(t *testing.T) {
	afs := afero.NewMemMapFs()

	_, err := FindAndParse(afs, "/no/such/config.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	assert.NilErr(t, afero.WriteFile(afs, "/broken.json", []byte(`{"contact": `), 0640))
	_, err = FindAndParse(afs, "/broken.json")
	assert.NotNilErr(t, err)

	assert.NilErr(t, afero.WriteFile(afs, "/typo.json", []byte(`{"contatc": "x"}`), 0640))
	_, err = FindAndParse(afs, "/typo.json")
	assert.NotNilErr(t, err)
	assert.Contains(t, err.Error(), "contatc")
}

// TestMissingUserConfig checks that defaults are used when the user has no
// configuration file.
func TestMissingUserConfig(t *testing.T) {
	cfg, err := FindAndParse(afero.NewMemMapFs(), "")
	assert.NilErr(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestWrite(t *testing.T) {
	afs := afero.NewMemMapFs()
	const path = "/home/user/.brainz/config.json"

	cfg := Defaults()
	cfg.Contact = "me@example.com"

	assert.NilErr(t, Write(afs, path, cfg))

	read, err := FindAndParse(afs, path)
	assert.NilErr(t, err)
	assert.Equal(t, cfg, read)

	err = Write(afs, path, Defaults())
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("expected an error for existing file but got %v", err)
	}
}
