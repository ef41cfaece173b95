// Package imaging discovers per-person photo files and renders them to
// the exact pixel size a worksheet slot requires.
package imaging

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// imageExts lists the accepted photo extensions, lower-cased.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
}

type orderedPath struct {
	order int
	path  string
}

// ScanDir groups the photo files in dir by person name. A file stem is a
// person name optionally followed by a numeric ordering suffix
// ("张三1.jpg", "张三2.jpg"); each person's paths are returned sorted by
// that suffix, stable for ties. Subdirectories, unknown extensions and
// stems that are all digits are skipped.
func ScanDir(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]orderedPath)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !imageExts[ext] {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		name, order := SplitNameOrder(stem)
		if name == "" {
			continue
		}
		grouped[name] = append(grouped[name], orderedPath{
			order: order,
			path:  filepath.Join(dir, entry.Name()),
		})
	}

	result := make(map[string][]string, len(grouped))
	for name, paths := range grouped {
		sort.SliceStable(paths, func(i, j int) bool {
			return paths[i].order < paths[j].order
		})
		ordered := make([]string, len(paths))
		for i, p := range paths {
			ordered[i] = p.path
		}
		result[name] = ordered
	}
	return result, nil
}

// SplitNameOrder splits a file stem into a person name and its numeric
// ordering suffix: the trailing run of ASCII digits is the order, the
// trimmed remainder is the name. A stem without a suffix orders as 0.
func SplitNameOrder(stem string) (name string, order int) {
	cut := len(stem)
	for cut > 0 && stem[cut-1] >= '0' && stem[cut-1] <= '9' {
		cut--
	}
	name = strings.TrimSpace(stem[:cut])
	if cut < len(stem) {
		// Suffixes long enough to overflow int are not orderings.
		if n, err := strconv.Atoi(stem[cut:]); err == nil {
			order = n
		}
	}
	return name, order
}
