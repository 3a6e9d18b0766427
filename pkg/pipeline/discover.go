package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Extensions accepted without content sniffing.
var sourceExtensions = map[string]bool{
	".c":   true,
	".h":   true,
	".cc":  true,
	".cpp": true,
	".cxx": true,
	".hh":  true,
	".hpp": true,
	".hxx": true,
	".inl": true,
}

// sniffLimit is how much of a file is read for language detection.
const sniffLimit = 8 * 1024

// Discover expands the argument list into the concrete inputs for a
// run. Plain files pass through; "-" becomes the stdin sentinel (the
// empty path); "@list" reads one path per line from list; directories
// are walked and filtered to C-family sources. Paths matching an
// ignore glob are dropped. Directory results are sorted so runs are
// deterministic.
func Discover(ctx context.Context, args []string, ignore []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	add := func(path string) {
		if path != "" && matchesIgnore(path, ignore) {
			return
		}
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		switch {
		case arg == "-":
			add("")

		case strings.HasPrefix(arg, "@"):
			listed, err := readFileList(arg[1:])
			if err != nil {
				return nil, err
			}
			for _, path := range listed {
				add(path)
			}

		default:
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", arg, err)
			}
			if !info.IsDir() {
				add(arg)
				continue
			}

			walked, err := walkSources(ctx, arg, ignore)
			if err != nil {
				return nil, err
			}
			for _, path := range walked {
				add(path)
			}
		}
	}

	return files, nil
}

// walkSources collects C-family source files under dir. Files with a
// known extension are taken as-is; anything else is sniffed with enry
// and kept only if it classifies as C or C++.
func walkSources(ctx context.Context, dir string, ignore []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if entry.IsDir() {
			if name := entry.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if path != dir && matchesIgnore(path, ignore) {
				return filepath.SkipDir
			}
			return nil
		}

		if sourceExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
			return nil
		}
		if isCFamily(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}

func isCFamily(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, sniffLimit)
	n, _ := f.Read(head)
	if n == 0 {
		return false
	}

	switch enry.GetLanguage(filepath.Base(path), head[:n]) {
	case "C", "C++":
		return true
	default:
		return false
	}
}

// matchesIgnore reports whether path matches any ignore pattern.
func matchesIgnore(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(path, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches path against a glob pattern. Plain patterns use
// filepath.Match against the full path and against the base name;
// "**/" and "/**" forms match path components recursively.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	switch {
	case strings.HasPrefix(pattern, "**/") && strings.HasSuffix(pattern, "/**"):
		mid := strings.TrimSuffix(strings.TrimPrefix(pattern, "**/"), "/**")
		return strings.Contains("/"+path+"/", "/"+mid+"/")

	case strings.HasSuffix(pattern, "/**"):
		prefix := strings.TrimSuffix(pattern, "/**")
		return path == prefix || strings.HasPrefix(path, prefix+"/")

	case strings.HasPrefix(pattern, "**/"):
		suffix := strings.TrimPrefix(pattern, "**/")
		if path == suffix || strings.HasSuffix(path, "/"+suffix) {
			return true
		}
		for _, part := range strings.Split(path, "/") {
			if ok, err := filepath.Match(suffix, part); err == nil && ok {
				return true
			}
		}
		return false
	}

	if ok, err := filepath.Match(pattern, path); err == nil && ok {
		return true
	}
	ok, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && ok
}

// readFileList reads one input path per line, skipping blanks.
func readFileList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file list %s: %w", path, err)
	}
	defer f.Close()

	var files []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			files = append(files, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read file list %s: %w", path, err)
	}
	return files, nil
}
