package git

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	ggitcfg "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/wirelineio/wns-docs/internal/foundation/errors"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"https://github.com/wirelineio/wns.git", "wirelineio/wns", false},
		{"https://github.com/wirelineio/wns", "wirelineio/wns", false},
		{"https://github.com/wirelineio/wns/", "wirelineio/wns", false},
		{"ssh://git@github.com/wirelineio/wns.git", "wirelineio/wns", false},
		{"git@github.com:wirelineio/wns.git", "wirelineio/wns", false},
		{"https://gitlab.com/group/sub/project.git", "sub/project", false},
		{"https://github.com/", "", true},
		{"git@github.com:wns", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRemoteURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectRepository(t *testing.T) {
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = DetectRepository(dir)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound), "missing origin should be not_found")

	_, err = repo.CreateRemote(&ggitcfg.RemoteConfig{Name: DefaultRemote, URLs: []string{"git@github.com:wirelineio/wns.git"}})
	require.NoError(t, err)

	docs := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(docs, 0o755))
	got, err := DetectRepository(docs)
	require.NoError(t, err)
	assert.Equal(t, "wirelineio/wns", got)
}

func TestDetectRepository_NotARepo(t *testing.T) {
	_, err := DetectRepository(t.TempDir())
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}
