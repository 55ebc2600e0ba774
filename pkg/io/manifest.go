package io

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/connections/pkg/core/grid"
	"github.com/matzehuels/connections/pkg/core/sheet"
)

// ManifestName is the file name of the manifest inside the output directory.
const ManifestName = "connections.toml"

// Document kinds.
const (
	KindIndex  = "index"
	KindPuzzle = "puzzle"
)

// Manifest describes one run.
type Manifest struct {
	Seed      uint64     `toml:"seed"`
	Page      Page       `toml:"page"`
	Pairs     []Pair     `toml:"pairs"`
	Documents []Document `toml:"documents"`
}

// Page is the geometry of every page of the run.
type Page struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	Margin    float64 `toml:"margin"`
	BoxMargin float64 `toml:"box_margin"`
	BoxWidth  float64 `toml:"box_width"`
	BoxHeight float64 `toml:"box_height"`
	Cells     int     `toml:"cells"`
}

// Pair records the canonical indices of two paired boxes and their anchors.
type Pair struct {
	A    int        `toml:"a"`
	B    int        `toml:"b"`
	From grid.Point `toml:"from"`
	To   grid.Point `toml:"to"`
}

// Document records one written document.
type Document struct {
	Name       string   `toml:"name"`
	Kind       string   `toml:"kind"`
	Files      []string `toml:"files"`
	ImagePairs int      `toml:"image_pairs,omitempty"`
	Filled     int      `toml:"filled,omitempty"`
}

// NewManifest describes sh without any documents.
func NewManifest(sh *sheet.Sheet) *Manifest {
	cfg := sh.Config()
	m := &Manifest{
		Seed: cfg.Seed,
		Page: Page{
			Width:     cfg.PageWidth,
			Height:    cfg.PageHeight,
			Margin:    cfg.Margin,
			BoxMargin: cfg.BoxMargin,
			BoxWidth:  cfg.BoxWidth(),
			BoxHeight: cfg.BoxHeight(),
			Cells:     cfg.Cells,
		},
	}
	for _, l := range sh.Links() {
		m.Pairs = append(m.Pairs, Pair{A: l.A.Index, B: l.B.Index, From: l.From, To: l.To})
	}
	return m
}

// WriteManifest encodes m as TOML to w.
func WriteManifest(m *Manifest, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}

// ExportManifest writes m to path.
func ExportManifest(m *Manifest, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteManifest(m, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadManifest decodes a TOML manifest from r.
func ReadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

// ImportManifest reads the manifest at path.
func ImportManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &m, nil
}
