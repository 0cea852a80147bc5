package convert

import (
	"io"
	"os"
	"runtime"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	// Layer to convert, defaults to the first layer in alphabetical order
	Layer string `yaml:"layer"`

	// Property used as feature id when an object has no id of its own
	IDProperty string `yaml:"id_property"`

	// Repair polygons with a zero-width buffer
	Repair bool `yaml:"repair"`

	// Skip objects that fail to convert instead of aborting
	SkipInvalid bool `yaml:"skip_invalid"`

	Workers int `yaml:"workers"`
}

func NewConfig() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
	}
}

func LoadConfig(filename string) (*Config, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ParseConfig(fp)
}

func ParseConfig(in io.Reader) (*Config, error) {
	c := NewConfig()
	err := yaml.NewDecoder(in).Decode(c)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c, nil
}
