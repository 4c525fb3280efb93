// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// File is the optional YAML configuration preloading identification
// settings. Command-line flags override anything set here.
type File struct {
	BlastURL   string   `yaml:"blast_url"`
	ImageURL   string   `yaml:"image_url"`
	Databases  []string `yaml:"databases"`
	Relays     []string `yaml:"relays"` // name=prefix specs, "direct" for none
	MaxHits    int      `yaml:"max_hits"`
	MinLength  int      `yaml:"min_length"`

	SubmitTimeout Duration `yaml:"submit_timeout"`
	PollInterval  Duration `yaml:"poll_interval"`
	PollBudget    Duration `yaml:"poll_budget"`
}

// Duration parses Go duration strings ("10s", "1m30s") from YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("bad duration %q: %v", s, err)
	}
	*d = Duration(v)
	return nil
}

// Load reads and parses path. A missing path returns a zero File without
// error only when path is empty.
func Load(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return f, fmt.Errorf("parse %s: %v", path, err)
	}
	return f, nil
}
