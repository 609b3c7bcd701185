// Package fonts resolves the UI font preference to a font file on disk.
package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// DefaultDirs are searched, in order, when the preference is a family name rather than a path.
var DefaultDirs = []string{"assets/fonts", "../../assets/fonts"}

// ScanDir returns the paths of all font files under dir, relative to dir and slash-separated.
// A missing dir yields no files and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !slices.Contains(Exts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

// normalize lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Resolve maps a font preference to a file. A preference naming an existing file is returned as is;
// otherwise it is matched as a family name ("Inter", "Google Sans") against the fonts under dirs,
// preferring a "Regular" face. An empty preference resolves to "" and no error.
func Resolve(pref string, dirs []string) (string, error) {
	pref = strings.TrimSpace(pref)
	if pref == "" {
		return "", nil
	}
	if info, err := os.Stat(pref); err == nil && !info.IsDir() {
		return pref, nil
	}
	name := strings.TrimSuffix(filepath.Base(pref), filepath.Ext(pref))
	if i := strings.Index(name, "-"); i > 0 {
		name = name[:i]
	}
	want := normalize(name)
	if want == "" {
		return "", os.ErrNotExist
	}

	var matches []string
	for _, dir := range dirs {
		list, err := ScanDir(dir)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), want) {
				matches = append(matches, filepath.Join(dir, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", os.ErrNotExist
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
