package git

import (
	stderrors "errors"
	"net/url"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	ferrors "github.com/wirelineio/wns-docs/internal/foundation/errors"
)

// DefaultRemote is the remote consulted by DetectRepository.
const DefaultRemote = "origin"

// DetectRepository opens the repository containing dir (searching parent
// directories) and returns the owner/repo identifier of its origin remote.
func DetectRepository(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if stderrors.Is(err, gogit.ErrRepositoryNotExists) {
			return "", ferrors.NotFoundError("no git repository at site root").
				WithContext("path", dir).Build()
		}
		return "", ferrors.GitError("open repository").WithContext("path", dir).WithCause(err).Build()
	}

	remote, err := repo.Remote(DefaultRemote)
	if err != nil {
		return "", ferrors.NotFoundError("repository has no origin remote").
			WithContext("path", dir).WithCause(err).Build()
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ferrors.NotFoundError("origin remote has no URL").WithContext("path", dir).Build()
	}
	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL extracts owner/repo from https, ssh and scp-like remote URLs:
//
//	https://github.com/wirelineio/wns.git
//	ssh://git@github.com/wirelineio/wns
//	git@github.com:wirelineio/wns.git
func ParseRemoteURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	var p string
	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return "", ferrors.GitError("parse remote URL").WithContext("url", raw).WithCause(err).Build()
		}
		p = u.Path
	case strings.Contains(raw, ":"):
		// scp-like: [user@]host:owner/repo
		p = raw[strings.Index(raw, ":")+1:]
	default:
		p = raw
	}

	p = strings.TrimSuffix(strings.Trim(p, "/"), ".git")
	parts := strings.Split(p, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", ferrors.GitError("remote URL has no owner/repo path").WithContext("url", raw).Build()
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1], nil
}
