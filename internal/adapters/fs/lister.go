// Package fs implements file discovery on the local file system.
package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/bft-labs/spritegrid/internal/domain"
)

var digitRun = regexp.MustCompile(`\d+`)

// Lister implements ports.FileLister.
type Lister struct {
	extensions map[string]bool
}

// NewLister creates a lister matching the given extensions (".png" style,
// case-insensitive). No extensions means ".png".
func NewLister(extensions ...string) *Lister {
	if len(extensions) == 0 {
		extensions = []string{".png"}
	}
	m := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		m[e] = true
	}
	return &Lister{extensions: m}
}

// List returns matching files under dir ordered by directory, then by the
// last number in the file stem.
func (l *Lister) List(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, dir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var files []string
	if recursive {
		err = filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && l.Match(path) {
				files = append(files, path)
			}
			return nil
		})
	} else {
		var ents []os.DirEntry
		ents, err = os.ReadDir(dir)
		for _, e := range ents {
			if !e.IsDir() && l.Match(e.Name()) {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}
	if err != nil {
		return nil, err
	}

	SortByIndex(files)
	return files, nil
}

// Match reports whether path has one of the lister's extensions.
func (l *Lister) Match(path string) bool {
	return l.extensions[strings.ToLower(filepath.Ext(path))]
}

// Index returns the last run of digits in the file stem of path.
func Index(path string) (int, bool) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	runs := digitRun.FindAllString(stem, -1)
	if len(runs) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(runs[len(runs)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortByIndex orders paths by directory, then embedded index. Numbered files
// come before unnumbered ones; ties are broken by name.
func SortByIndex(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		di, dj := filepath.Dir(paths[i]), filepath.Dir(paths[j])
		if di != dj {
			return di < dj
		}
		ni, oki := Index(paths[i])
		nj, okj := Index(paths[j])
		switch {
		case oki && okj && ni != nj:
			return ni < nj
		case oki != okj:
			return oki
		}
		return filepath.Base(paths[i]) < filepath.Base(paths[j])
	})
}
