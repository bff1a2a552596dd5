// Package config loads the optional YAML file that overrides the built-in
// defaults of the topology builders.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the content of an override file. Absent sections and keys keep
// their defaults.
type File struct {
	System *SystemSection `yaml:"system"`
	Engine *EngineSection `yaml:"engine"`
	Caches *CachesSection `yaml:"caches"`
	Buses  *BusesSection  `yaml:"buses"`
	Memory *MemorySection `yaml:"memory"`
}

// SystemSection overrides system-wide parameters.
type SystemSection struct {
	Name  string `yaml:"name"`  // root component, e.g. System
	Clock string `yaml:"clock"` // e.g. 2GHz
}

// EngineSection describes what the simulation engine provides.
type EngineSection struct {
	Predictors []string `yaml:"predictors"` // tournament, local, none
}

// CachesSection overrides the caches by level.
type CachesSection struct {
	L1I *CacheSection `yaml:"l1i"`
	L1D *CacheSection `yaml:"l1d"`
	L2  *CacheSection `yaml:"l2"`
}

// CacheSection overrides the parameters of one cache.
type CacheSection struct {
	Size            string `yaml:"size"` // e.g. 32kB
	Assoc           *int   `yaml:"assoc"`
	TagLatency      *int   `yaml:"tagLatency"`  // cycles
	DataLatency     *int   `yaml:"dataLatency"` // cycles
	ResponseLatency *int   `yaml:"responseLatency"`
	MSHRs           *int   `yaml:"mshrs"`
	TargetsPerMSHR  *int   `yaml:"targetsPerMSHR"`
}

// BusesSection overrides the crossbars.
type BusesSection struct {
	L2     *BusSection `yaml:"l2"`     // between the L1 caches and the L2
	System *BusSection `yaml:"system"` // between the L2 and the memory
}

// BusSection overrides the parameters of one crossbar. Latencies may be
// zero.
type BusSection struct {
	Width           *int `yaml:"width"` // bytes
	FrontendLatency *int `yaml:"frontendLatency"`
	ForwardLatency  *int `yaml:"forwardLatency"`
	ResponseLatency *int `yaml:"responseLatency"`
}

// MemorySection overrides the memory parameters.
type MemorySection struct {
	AccessLatency string `yaml:"accessLatency"` // e.g. 50ns
}

// Load reads and checks an override file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes and checks an override file. Unknown keys are errors.
func Parse(r io.Reader) (*File, error) {
	var cfg File

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
