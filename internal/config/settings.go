package config

import (
	"errors"
	"io/fs"

	"gopkg.in/ini.v1"
)

const (
	// Sentinel marks a setting that was not provided.
	Sentinel = "None"

	DefaultSettingsFile = "config.ini"
)

// Settings are the data source connection parameters of the exchange rate
// tool, read from the default section of an INI file:
//
//	url = http://data.fixer.io/api/latest?access_key={0}&format={1}
//	key = <access key>
type Settings struct {
	URL string
	Key string
}

func (s Settings) IsComplete() bool {
	return s.URL != Sentinel && s.Key != Sentinel
}

// LoadSettings reads path. A missing file yields sentinel values and no
// error; a file that cannot be parsed yields sentinel values and the error.
func LoadSettings(path string) (Settings, error) {
	settings := Settings{URL: Sentinel, Key: Sentinel}

	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}

		return settings, err
	}

	section := cfg.Section(ini.DefaultSection)
	settings.URL = section.Key("url").MustString(Sentinel)
	settings.Key = section.Key("key").MustString(Sentinel)

	return settings, nil
}
