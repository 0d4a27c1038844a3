package naming

import (
	"net/url"
	"regexp"
	"strings"
)

const githubShorthand = "github:"

var ownerRepo = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)

// RepoURL returns the GitHub web URL for a manifest "repository" field,
// which may be a string or an object with a "url" property. Only GitHub
// HTTPS URLs and the "github:owner/repo" shorthand are recognized; any other
// shape reports ok == false, meaning "no badge".
func RepoURL(repository any) (string, bool) {
	raw, ok := repositoryString(repository)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)

	if rest, found := strings.CutPrefix(raw, githubShorthand); found {
		rest = strings.TrimSuffix(rest, ".git")
		if !ownerRepo.MatchString(rest) {
			return "", false
		}
		return "https://github.com/" + rest, true
	}

	raw = strings.TrimPrefix(raw, "git+")
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if u.Scheme != "https" {
		return "", false
	}
	switch strings.ToLower(u.Hostname()) {
	case "github.com", "www.github.com":
	default:
		return "", false
	}
	if strings.Trim(u.Path, "/") == "" {
		return "", false
	}

	raw = strings.TrimSuffix(raw, "/")
	return strings.TrimSuffix(raw, ".git"), true
}

func repositoryString(repository any) (string, bool) {
	switch r := repository.(type) {
	case nil:
		return "", false
	case string:
		return r, true
	case map[string]any:
		s, ok := r["url"].(string)
		return s, ok
	case map[string]string:
		s, ok := r["url"]
		return s, ok
	default:
		return "", false
	}
}
