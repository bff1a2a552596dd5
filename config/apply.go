package config

import (
	"fmt"
	"strings"

	"github.com/sarchlab/ilptopo/bpred"
	"github.com/sarchlab/ilptopo/mem"
	"github.com/sarchlab/ilptopo/mem/cache"
	"github.com/sarchlab/ilptopo/noc/xbar"
	"github.com/sarchlab/ilptopo/sim"
	"github.com/sarchlab/ilptopo/topology"
)

// Apply returns the builder with the overrides of the file applied.
func (f *File) Apply(b topology.Builder) (topology.Builder, error) {
	var err error

	if f.System != nil && f.System.Name != "" {
		if err := sim.ValidateName(f.System.Name); err != nil {
			return b, fmt.Errorf("system.name: %w", err)
		}

		if strings.Contains(f.System.Name, ".") {
			return b, fmt.Errorf("system.name: %q must be a single element",
				f.System.Name)
		}

		b = b.WithName(f.System.Name)
	}

	if f.System != nil && f.System.Clock != "" {
		clock, err := sim.ParseFreq(f.System.Clock)
		if err != nil {
			return b, fmt.Errorf("system.clock: %w", err)
		}

		b = b.WithClock(clock)
	}

	if f.Engine != nil && f.Engine.Predictors != nil {
		table, err := capabilities(f.Engine.Predictors)
		if err != nil {
			return b, fmt.Errorf("engine.predictors: %w", err)
		}

		b = b.WithSupportedPredictors(table)
	}

	if f.Caches != nil {
		b, err = f.Caches.apply(b)
		if err != nil {
			return b, err
		}
	}

	if f.Buses != nil {
		b, err = f.Buses.apply(b)
		if err != nil {
			return b, err
		}
	}

	if f.Memory != nil && f.Memory.AccessLatency != "" {
		latency, err := sim.ParseTime(f.Memory.AccessLatency)
		if err != nil || latency <= 0 {
			return b, fmt.Errorf("memory.accessLatency: invalid time %q",
				f.Memory.AccessLatency)
		}

		b = b.WithMemoryBuilder(b.MemoryBuilder().WithAccessLatency(latency))
	}

	return b, nil
}

func validateConfig(cfg *File) error {
	_, err := cfg.Apply(topology.MakeBuilder())
	return err
}

func capabilities(names []string) (bpred.CapabilityTable, error) {
	table := bpred.CapabilityTable{}

	for _, name := range names {
		k, err := bpred.ParseKind(name)
		if err != nil {
			return nil, err
		}

		table[k] = true
	}

	return table, nil
}

func (s *CachesSection) apply(b topology.Builder) (topology.Builder, error) {
	h := b.CacheHierarchyBuilder()

	l1i, err := s.L1I.apply("caches.l1i", h.L1IBuilder())
	if err != nil {
		return b, err
	}

	l1d, err := s.L1D.apply("caches.l1d", h.L1DBuilder())
	if err != nil {
		return b, err
	}

	l2, err := s.L2.apply("caches.l2", h.L2Builder())
	if err != nil {
		return b, err
	}

	h = h.WithL1IBuilder(l1i).WithL1DBuilder(l1d).WithL2Builder(l2)

	return b.WithCacheHierarchyBuilder(h), nil
}

func (s *CacheSection) apply(
	key string,
	b cache.Builder,
) (cache.Builder, error) {
	if s == nil {
		return b, nil
	}

	if s.Size != "" {
		size, err := mem.ParseByteSize(s.Size)
		if err != nil {
			return b, fmt.Errorf("%s.size: %w", key, err)
		}

		b = b.WithSize(size)
	}

	ints := []struct {
		name  string
		value *int
		set   func(cache.Builder, int) cache.Builder
	}{
		{"assoc", s.Assoc, cache.Builder.WithAssociativity},
		{"tagLatency", s.TagLatency, cache.Builder.WithTagLatency},
		{"dataLatency", s.DataLatency, cache.Builder.WithDataLatency},
		{"responseLatency", s.ResponseLatency, cache.Builder.WithResponseLatency},
		{"mshrs", s.MSHRs, cache.Builder.WithMSHRs},
		{"targetsPerMSHR", s.TargetsPerMSHR, cache.Builder.WithTargetsPerMSHR},
	}

	for _, field := range ints {
		if field.value == nil {
			continue
		}

		if *field.value <= 0 {
			return b, fmt.Errorf("%s.%s must be positive, got %d",
				key, field.name, *field.value)
		}

		b = field.set(b, *field.value)
	}

	return b, nil
}

func (s *BusesSection) apply(b topology.Builder) (topology.Builder, error) {
	l1Bus, err := s.L2.apply("buses.l2", b.L1BusBuilder())
	if err != nil {
		return b, err
	}

	memBus, err := s.System.apply("buses.system", b.MemBusBuilder())
	if err != nil {
		return b, err
	}

	return b.WithL1BusBuilder(l1Bus).WithMemBusBuilder(memBus), nil
}

func (s *BusSection) apply(key string, b xbar.Builder) (xbar.Builder, error) {
	if s == nil {
		return b, nil
	}

	if s.Width != nil {
		if *s.Width <= 0 {
			return b, fmt.Errorf("%s.width must be positive, got %d",
				key, *s.Width)
		}

		b = b.WithWidth(*s.Width)
	}

	latencies := []struct {
		name  string
		value *int
		set   func(xbar.Builder, int) xbar.Builder
	}{
		{"frontendLatency", s.FrontendLatency, xbar.Builder.WithFrontendLatency},
		{"forwardLatency", s.ForwardLatency, xbar.Builder.WithForwardLatency},
		{"responseLatency", s.ResponseLatency, xbar.Builder.WithResponseLatency},
	}

	for _, field := range latencies {
		if field.value == nil {
			continue
		}

		if *field.value < 0 {
			return b, fmt.Errorf("%s.%s must not be negative, got %d",
				key, field.name, *field.value)
		}

		b = field.set(b, *field.value)
	}

	return b, nil
}
