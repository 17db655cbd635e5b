package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filebase/internal/core/domain"
)

func TestIdentityFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		path          string
		wantDirectory string
		wantName      string
		wantExtension string
	}{
		{
			name:          "plain file",
			path:          "/tmp/x/Foo.bar",
			wantDirectory: "/tmp/x",
			wantName:      "Foo",
			wantExtension: ".bar",
		},
		{
			name:          "versioned file splits on first and last dot",
			path:          "/a/b/report.v2.csv",
			wantDirectory: "/a/b",
			wantName:      "report",
			wantExtension: ".csv",
		},
		{
			name:          "many dots keep only the last segment as extension",
			path:          "/data/a.b.tar.gz",
			wantDirectory: "/data",
			wantName:      "a",
			wantExtension: ".gz",
		},
		{
			name:          "hidden file has no name",
			path:          "/home/user/.hidden",
			wantDirectory: "/home/user",
			wantName:      "",
			wantExtension: ".hidden",
		},
		{
			name:          "no extension",
			path:          "/tmp/README",
			wantDirectory: "/tmp",
			wantName:      "README",
			wantExtension: "",
		},
	}

	for _, c := range tests {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			identity := domain.IdentityFromPath(c.path)

			assert.Equal(t, c.wantDirectory, identity.Directory)
			assert.Equal(t, c.wantName, identity.Name)
			assert.Equal(t, c.wantExtension, identity.Extension)
		})
	}
}

func TestIdentityAbsolutePath(t *testing.T) {
	t.Parallel()

	t.Run("complete identity joins back into a path", func(t *testing.T) {
		t.Parallel()

		identity := domain.Identity{Directory: "/tmp/x", Name: "Foo", Extension: ".bar"}

		path, err := identity.AbsolutePath()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/x/Foo.bar", path)
		assert.True(t, identity.Complete())
	})

	t.Run("unset identity fails explicitly", func(t *testing.T) {
		t.Parallel()

		_, err := domain.Identity{}.AbsolutePath()

		var incomplete *domain.IncompleteIdentityError
		require.ErrorAs(t, err, &incomplete)
		assert.Equal(t, []string{"name", "extension", "directory"}, incomplete.Missing)
	})
}

func TestIdentityMissingOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		identity domain.Identity
		want     []string
	}{
		{
			name:     "all missing",
			identity: domain.Identity{},
			want:     []string{"name", "extension", "directory"},
		},
		{
			name:     "name and extension missing",
			identity: domain.Identity{Directory: "/tmp"},
			want:     []string{"name", "extension"},
		},
		{
			name:     "directory missing",
			identity: domain.Identity{Name: "Foo", Extension: ".bar"},
			want:     []string{"directory"},
		},
		{
			name:     "nothing missing",
			identity: domain.Identity{Directory: "/tmp", Name: "Foo", Extension: ".bar"},
			want:     nil,
		},
	}

	for _, c := range tests {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.want, c.identity.Missing())
		})
	}
}
