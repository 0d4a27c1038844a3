package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepoURL(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   string
		wantOK bool
	}{
		{"https with .git", "https://github.com/org/repo.git", "https://github.com/org/repo", true},
		{"https plain", "https://github.com/org/repo", "https://github.com/org/repo", true},
		{"trailing slash", "https://github.com/org/repo/", "https://github.com/org/repo", true},
		{"git+https", "git+https://github.com/org/repo.git", "https://github.com/org/repo", true},
		{"object with shorthand", map[string]any{"type": "git", "url": "github:org/repo"}, "https://github.com/org/repo", true},
		{"string map", map[string]string{"url": "https://github.com/org/repo.git"}, "https://github.com/org/repo", true},
		{"plain http", "http://github.com/org/repo", "", false},
		{"www host", "https://www.github.com/org/repo", "https://www.github.com/org/repo", true},
		{"non-string url", map[string]any{"url": 7.0}, "", false},
		{"shorthand", "github:org/repo", "https://github.com/org/repo", true},
		{"ssh other host", "git@evil.example.com:x/y.git", "", false},
		{"ssh github", "git@github.com:org/repo.git", "", false},
		{"other host", "https://gitlab.com/org/repo.git", "", false},
		{"github in path", "https://evil.example.com/github.com/org/repo", "", false},
		{"bare host", "https://github.com/", "", false},
		{"empty shorthand", "github:", "", false},
		{"gitlab shorthand", "gitlab:org/repo", "", false},
		{"nil", nil, "", false},
		{"object without url", map[string]any{"type": "git"}, "", false},
		{"number", 42, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RepoURL(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
