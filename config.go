package i18ndate

import (
	"fmt"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type (
	//Pattern represents configured parse/output pattern pair, a single side set is used for both
	Pattern struct {
		Parse  string `yaml:"parse,omitempty"`
		Output string `yaml:"output,omitempty"`
	}

	//Patterns represents date and datetime patterns
	Patterns struct {
		Date     *Pattern `yaml:"date,omitempty"`
		DateTime *Pattern `yaml:"datetime,omitempty"`
	}

	//Config represents formats configuration
	Config struct {
		Locale  string    `yaml:"locale,omitempty"`
		Storage *Patterns `yaml:"storage,omitempty"`
		Display *Patterns `yaml:"display,omitempty"`
	}
)

func (p *Pattern) pair() (string, string) {
	parse, output := p.Parse, p.Output
	if parse == "" {
		parse = output
	}
	if output == "" {
		output = parse
	}
	return parse, output
}

// LoadConfig loads YAML config
func LoadConfig(data []byte) (*Config, error) {
	ret := &Config{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode formats config: %w", err)
	}
	if _, err := ret.Options(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Options returns format options for the config, locale is applied before explicit display patterns
func (c *Config) Options() ([]FormatOption, error) {
	var result []FormatOption
	if c.Locale != "" {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
		}
		result = append(result, WithLocale(tag))
	}
	if c.Storage != nil {
		if c.Storage.Date != nil {
			result = append(result, WithStorageDate(c.Storage.Date.pair()))
		}
		if c.Storage.DateTime != nil {
			result = append(result, WithStorageDateTime(c.Storage.DateTime.pair()))
		}
	}
	if c.Display != nil {
		if c.Display.Date != nil {
			result = append(result, WithDisplayDate(c.Display.Date.pair()))
		}
		if c.Display.DateTime != nil {
			result = append(result, WithDisplayDateTime(c.Display.DateTime.pair()))
		}
	}
	return result, nil
}
