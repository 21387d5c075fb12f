package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScanProfile is the YAML description of a recurring scan, e.g.
//
//	root: D:/runs/walkway
//	cases: [1, 2, 3]
//	realizations: [1, 2]
//	chain:
//	  prefix: Walkway
//	  first: 1
//	  last: 50
//	start_time: 200
//	sample_interval: 0.1
//	axes: [roll, yaw]
type ScanProfile struct {
	Root           string       `yaml:"root"`
	Cases          []int        `yaml:"cases"`
	Realizations   []int        `yaml:"realizations"`
	Bodies         []string     `yaml:"bodies"`
	Chain          ChainProfile `yaml:"chain"`
	StartTime      float64      `yaml:"start_time"`
	SampleInterval float64      `yaml:"sample_interval"`
	Axes           []string     `yaml:"axes"`
}

// ChainProfile generates body names Prefix+First .. Prefix+Last
type ChainProfile struct {
	Prefix string `yaml:"prefix"`
	First  int    `yaml:"first"`
	Last   int    `yaml:"last"`
}

// BodyNames returns the explicit bodies list if present, else the generated chain
func (p *ScanProfile) BodyNames() []string {
	if len(p.Bodies) > 0 {
		return p.Bodies
	}
	return p.Chain.Names()
}

// Names expands the chain range, descending when Last < First
func (c ChainProfile) Names() []string {
	if c.Prefix == "" {
		return nil
	}
	step := 1
	if c.Last < c.First {
		step = -1
	}
	var names []string
	for i := c.First; ; i += step {
		names = append(names, fmt.Sprintf("%s%d", c.Prefix, i))
		if i == c.Last {
			break
		}
	}
	return names
}

// LoadScanProfile reads and parses a scan profile. A missing sample
// interval takes the configured default.
func LoadScanProfile(path string) (*ScanProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scan profile: %w", err)
	}
	var p ScanProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse scan profile: %w", err)
	}
	if p.SampleInterval == 0 {
		p.SampleInterval = SampleInterval()
	}
	return &p, nil
}
