package structure

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pmu2022/lsms/lll"
	"github.com/pmu2022/lsms/matrix"
)

// document is the on-disk form of a Structure:
//
//	lattice: [[2.0, 0, 0], [0.1, 1.8, 0], [0.1, 0.2, 0.9]]
//	delta: 0.75          # optional Lovász parameter
//	sites:
//	  - species: 1
//	    frac: [0.5, 0.5, 0.5]
type document struct {
	Lattice [][]float64 `yaml:"lattice"`
	Delta   *float64    `yaml:"delta,omitempty"`
	Sites   []siteDoc   `yaml:"sites"`
}

type siteDoc struct {
	Species int       `yaml:"species"`
	Frac    []float64 `yaml:"frac"`
}

// Decode reads one YAML structure document from r. Unknown keys are rejected.
// Extra opts are applied after any delta given in the document.
func Decode(r io.Reader, opts ...lll.Option) (*Structure, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse structure: %w", ErrEmptyDocument)
		}
		return nil, fmt.Errorf("parse structure: %w", err)
	}
	if doc.Lattice == nil {
		return nil, fmt.Errorf("parse structure: %w", ErrEmptyDocument)
	}

	lattice, err := matrix.FromRows(doc.Lattice)
	if err != nil {
		return nil, fmt.Errorf("parse structure: lattice: %w", err)
	}

	coords := make([]matrix.Vec3, len(doc.Sites))
	species := make([]int, len(doc.Sites))
	for i, site := range doc.Sites {
		if coords[i], err = matrix.VecFromSlice(site.Frac); err != nil {
			return nil, fmt.Errorf("parse structure: site %d: %w", i, err)
		}
		species[i] = site.Species
	}

	if doc.Delta != nil {
		opts = append([]lll.Option{lll.WithDelta(*doc.Delta)}, opts...)
	}

	return New(lattice, coords, species, opts...)
}

// Load opens path and decodes it with Decode.
func Load(path string, opts ...lll.Option) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load structure: %w", err)
	}
	defer f.Close()

	return Decode(f, opts...)
}
