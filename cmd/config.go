/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cmd

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/bbva/bintree/tree"
)

const (
	defaultConfigPath = "~/.bintree.yaml"
	envPrefix         = "BINTREE"
)

// Config holds the options of a bintree run, merged from flags,
// environment variables and the config file.
type Config struct {
	// Log level.
	Log string

	// LogLocation adds the file and line of the caller to each log line.
	LogLocation bool

	// Indent is the number of spaces per depth level in the final dump.
	Indent int

	// Input is an optional script of answers used instead of stdin.
	Input string
}

func DefaultConfig() *Config {
	return &Config{
		Log:         "error",
		LogLocation: false,
		Indent:      tree.DefaultIndent,
		Input:       "",
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	conf := DefaultConfig()
	v.SetDefault("log", conf.Log)
	v.SetDefault("log-location", conf.LogLocation)
	v.SetDefault("indent", conf.Indent)
	v.SetDefault("input", conf.Input)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the config file, if any, and returns the merged
// configuration. A missing file is only an error when its path was given
// explicitly.
func loadConfig(v *viper.Viper, explicit bool) (*Config, error) {
	path, err := homedir.Expand(v.GetString("config"))
	if err != nil {
		return nil, errors.Wrap(err, "expanding config path")
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "reading config file %s", path)
			}
		} else if explicit {
			return nil, errors.Wrapf(err, "config file %s", path)
		}
	}

	conf := &Config{
		Log:   v.GetString("log"),
		Input: v.GetString("input"),
	}

	// viper's typed getters turn unparseable values into zero values
	if conf.LogLocation, err = cast.ToBoolE(v.Get("log-location")); err != nil {
		return nil, errors.Wrapf(err, "invalid log-location %v", v.Get("log-location"))
	}
	if conf.Indent, err = cast.ToIntE(v.Get("indent")); err != nil {
		return nil, errors.Wrapf(err, "invalid indent %v", v.Get("indent"))
	}
	if conf.Indent < 0 {
		return nil, errors.Newf("indent must not be negative, got %d", conf.Indent)
	}
	if conf.Input != "" {
		if conf.Input, err = homedir.Expand(conf.Input); err != nil {
			return nil, errors.Wrap(err, "expanding input path")
		}
	}
	return conf, nil
}
