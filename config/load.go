// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// document mirrors the accepted YAML keys. Pointers distinguish "absent"
// from an explicit zero so that defaults survive partial documents.
type document struct {
	PositiveMinimum *float64 `yaml:"positive_minimum"`
	Quadratures     *int     `yaml:"quadratures"`
	Seed            *uint64  `yaml:"seed"`
	Epsilon         *float64 `yaml:"epsilon"`
	LogLevel        string   `yaml:"log_level"`
}

// Load decodes a YAML document into a Config. Unknown keys are rejected.
// An empty document yields Default(). When log_level is set, a zap
// production logger at that level is built; otherwise the no-op logger is kept.
//
// Example document:
//
//	positive_minimum: 1e-6
//	quadratures: 30
//	seed: 42
//	log_level: debug
func Load(r io.Reader) (*Config, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, configErrorf("Load", errors.Join(ErrDecode, err))
	}

	// Validate before calling panicking option constructors.
	var opts []Option
	if doc.PositiveMinimum != nil {
		if !(*doc.PositiveMinimum > 0) || *doc.PositiveMinimum > 1 {
			return nil, configErrorf("positive_minimum", ErrInvalid)
		}
		opts = append(opts, WithPositiveMinimum(*doc.PositiveMinimum))
	}
	if doc.Quadratures != nil {
		if *doc.Quadratures < 1 {
			return nil, configErrorf("quadratures", ErrInvalid)
		}
		opts = append(opts, WithQuadratures(*doc.Quadratures))
	}
	if doc.Seed != nil {
		opts = append(opts, WithSeed(*doc.Seed))
	}
	if doc.Epsilon != nil {
		if !(*doc.Epsilon >= 0) || *doc.Epsilon > 1 {
			return nil, configErrorf("epsilon", ErrInvalid)
		}
		opts = append(opts, WithEpsilon(*doc.Epsilon))
	}
	if doc.LogLevel != "" {
		lvl, err := zapcore.ParseLevel(doc.LogLevel)
		if err != nil {
			return nil, configErrorf("log_level", errors.Join(ErrInvalid, err))
		}
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(lvl)
		logger, err := zc.Build()
		if err != nil {
			return nil, configErrorf("log_level", err)
		}
		opts = append(opts, WithLogger(logger))
	}

	return New(opts...), nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, configErrorf("LoadFile", err)
	}
	defer f.Close()

	return Load(f)
}
