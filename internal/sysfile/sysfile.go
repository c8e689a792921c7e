// SPDX-License-Identifier: MIT
// Package sysfile loads linear systems A·x = b from disk.
//
// Two formats are supported, selected by file extension:
//
//	.yaml/.yml  a YAML document with a list of named systems;
//	.lsb        a single system in the little-endian binary layout below,
//	            read through a read-only memory mapping.
//
// Binary layout (.lsb):
//
//	offset 0   "LSB1"               magic
//	offset 4   uint32 n             system size
//	offset 8   n*n float64          A, row-major
//	...        n float64            b
package sysfile

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/linsolve/matrix"
)

var (
	// ErrUnsupportedFormat is returned for an unknown file extension.
	ErrUnsupportedFormat = errors.New("sysfile: unsupported file format")
	// ErrInvalidSystem is returned for an empty, ragged, non-square or mismatched system.
	ErrInvalidSystem = errors.New("sysfile: invalid system")
	// ErrBadHeader is returned when a binary file does not start with the magic.
	ErrBadHeader = errors.New("sysfile: bad binary header")
	// ErrTruncated is returned when a binary file length disagrees with its header.
	ErrTruncated = errors.New("sysfile: truncated binary file")
)

// System is one named linear system with optional solver overrides.
// Zero Tolerance or MaxIterations means "use the caller's default".
type System struct {
	Name          string      `yaml:"name"`
	Matrix        [][]float64 `yaml:"matrix"`
	Vector        []float64   `yaml:"vector"`
	Tolerance     float64     `yaml:"tolerance,omitempty"`
	MaxIterations int         `yaml:"max_iterations,omitempty"`
}

// Validate checks that the system is non-empty, square and that b matches A.
func (s System) Validate() error {
	n := len(s.Matrix)
	if n == 0 {
		return fmt.Errorf("system %q: empty matrix: %w", s.Name, ErrInvalidSystem)
	}
	for i, row := range s.Matrix {
		if len(row) != n {
			return fmt.Errorf("system %q: row %d has %d entries, want %d: %w",
				s.Name, i, len(row), n, ErrInvalidSystem)
		}
	}
	if len(s.Vector) != n {
		return fmt.Errorf("system %q: vector has %d entries, want %d: %w",
			s.Name, len(s.Vector), n, ErrInvalidSystem)
	}
	if s.Tolerance < 0 || s.MaxIterations < 0 {
		return fmt.Errorf("system %q: negative solver override: %w", s.Name, ErrInvalidSystem)
	}
	if math.IsNaN(s.Tolerance) || math.IsInf(s.Tolerance, 0) {
		return fmt.Errorf("system %q: tolerance %g is not finite: %w", s.Name, s.Tolerance, ErrInvalidSystem)
	}

	return nil
}

// Dense returns A as a freshly allocated *matrix.Dense.
func (s System) Dense() (*matrix.Dense, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return matrix.NewDenseFromRows(s.Matrix)
}

// Load reads every system stored in path. The format follows the extension.
func Load(path string) ([]System, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("sysfile: %w", err)
		}
		defer f.Close()

		return DecodeYAML(f)
	case ".lsb":
		s, err := loadBinary(path)
		if err != nil {
			return nil, err
		}

		return []System{s}, nil
	default:
		return nil, fmt.Errorf("sysfile: %s: %w", path, ErrUnsupportedFormat)
	}
}
