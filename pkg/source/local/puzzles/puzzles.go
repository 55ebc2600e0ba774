// Package puzzles discovers puzzle folders and their image pairs on disk.
//
// A puzzles root holds one subfolder per puzzle. Inside a puzzle folder every
// file named "<stem>_fst.png" is the first image of a pair; the second image
// is "<stem>_snd.png" in the same folder. Its existence is not checked here;
// a missing partner surfaces as an image load error when the page is drawn.
//
// Entries are returned in the order the operating system lists them, not
// sorted. Page order across platforms is therefore not guaranteed.
package puzzles

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/connections/pkg/errors"
)

// Image name suffixes of a pair.
const (
	FirstSuffix  = "_fst.png"
	SecondSuffix = "_snd.png"
)

// ImagePair holds the two image paths of one puzzle item.
type ImagePair struct {
	First  string `toml:"first" json:"first"`
	Second string `toml:"second" json:"second"`
}

// Puzzle is one puzzle folder.
type Puzzle struct {
	Name string // folder name, used as the document name
	Dir  string // folder path
}

// List returns the puzzle folders under root. Non-directory entries are skipped.
func List(root string) ([]Puzzle, error) {
	entries, err := readDir(root)
	if err != nil {
		return nil, err
	}
	var out []Puzzle
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		out = append(out, Puzzle{Name: e.Name(), Dir: filepath.Join(root, e.Name())})
	}
	return out, nil
}

// ImagePairs returns the image pairs of the puzzle folder dir.
func ImagePairs(dir string) ([]ImagePair, error) {
	entries, err := readDir(dir)
	if err != nil {
		return nil, err
	}
	var pairs []ImagePair
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), FirstSuffix) {
			continue
		}
		first := filepath.Join(dir, e.Name())
		pairs = append(pairs, ImagePair{First: first, Second: Partner(first)})
	}
	return pairs, nil
}

// Partner returns the second image path belonging to a first image path.
func Partner(first string) string {
	return strings.TrimSuffix(first, FirstSuffix) + SecondSuffix
}

// readDir lists dir in directory order. os.ReadDir would sort by name.
func readDir(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeDirectoryNotFound, err, "directory %s not found", dir)
		}
		return nil, errors.Wrap(errors.ErrCodeDirectoryNotFound, err, "open %s", dir)
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDirectoryNotFound, err, "read %s", dir)
	}
	return entries, nil
}
