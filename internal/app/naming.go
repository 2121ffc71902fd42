package app

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// OutputPaths names the files of an n-file output: output itself for one
// file, otherwise {prefix}-{i}{ext} with a 1-based i.
func OutputPaths(output string, n int) []string {
	if n <= 1 {
		return []string{output}
	}
	ext := filepath.Ext(output)
	prefix := strings.TrimSuffix(output, ext)
	paths := make([]string, n)
	for i := range paths {
		paths[i] = fmt.Sprintf("%s-%d%s", prefix, i+1, ext)
	}
	return paths
}

// WithSuffix inserts suffix between the stem and the extension of path.
func WithSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

var partSuffix = regexp.MustCompile(`-\d+$`)

// GroupName strips a split part number from path: tank-2.png becomes
// tank.png.
func GroupName(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return partSuffix.ReplaceAllString(stem, "") + ext
}

// withDefaultExt appends .png to an output path without an extension.
func withDefaultExt(path string) string {
	if filepath.Ext(path) == "" {
		return path + ".png"
	}
	return path
}
