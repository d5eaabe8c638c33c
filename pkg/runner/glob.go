package runner

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// matcher is a compiled set of glob patterns matched against slash paths.
type matcher struct {
	globs []glob.Glob
}

// compileGlobs compiles patterns with '/' as separator. A pattern without a
// slash also matches the base name, and "dir/**" matches dir itself.
func compileGlobs(patterns []string) (*matcher, error) {
	m := &matcher{}
	for _, p := range patterns {
		p = filepath.ToSlash(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", p, err)
		}
		m.globs = append(m.globs, g)
		if base, ok := strings.CutSuffix(p, "/**"); ok && base != "" {
			g, err := glob.Compile(base, '/')
			if err != nil {
				return nil, fmt.Errorf("invalid glob %q: %w", p, err)
			}
			m.globs = append(m.globs, g)
		}
	}
	return m, nil
}

func (m *matcher) empty() bool {
	return m == nil || len(m.globs) == 0
}

// match reports whether rel (relative to the working directory) or its base
// name matches any pattern.
func (m *matcher) match(rel string) bool {
	if m.empty() {
		return false
	}
	rel = filepath.ToSlash(rel)
	base := path.Base(rel)
	for _, g := range m.globs {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}
