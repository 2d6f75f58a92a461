package trellis

import (
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// Config holds run parameters for the trellis command line tools.
// Command flags overwrite config file values.
type Config struct {
	ModelFile   string `yaml:"model_file,omitempty" toml:"model_file" json:"model_file,omitempty"`
	Sequence    string `yaml:"sequence,omitempty" toml:"sequence" json:"sequence,omitempty"`
	ResultsFile string `yaml:"results_file,omitempty" toml:"results_file" json:"results_file,omitempty"`

	Decoder Decoder `yaml:"decoder,omitempty" toml:"decoder" json:"decoder,omitempty"`
	Sampler Sampler `yaml:"sampler,omitempty" toml:"sampler" json:"sampler,omitempty"`
}

type Decoder struct {
	ShowTables bool `yaml:"show_tables,omitempty" toml:"show_tables" json:"show_tables,omitempty"`
}

type Sampler struct {
	Seed   int64 `yaml:"seed,omitempty" toml:"seed" json:"seed,omitempty"`
	MaxLen int   `yaml:"max_length,omitempty" toml:"max_length" json:"max_length,omitempty"`
	Num    int   `yaml:"num_sequences,omitempty" toml:"num_sequences" json:"num_sequences,omitempty"`
}

// ReadConfig reads a configuration file. The format is selected by the
// file extension: ".toml" for TOML, anything else is parsed as YAML.
func ReadConfig(fn string) (*Config, error) {

	b, err := ioutil.ReadFile(fn)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	switch filepath.Ext(fn) {
	case ".toml":
		if _, e := toml.Decode(string(b), config); e != nil {
			return nil, fmt.Errorf("failed to parse toml config file %s: %s", fn, e)
		}
	default:
		if e := yaml.Unmarshal(b, config); e != nil {
			return nil, fmt.Errorf("failed to parse yaml config file %s: %s", fn, e)
		}
	}
	return config, nil
}
