package domain

import (
	"path/filepath"
	"strings"
)

// Identity is the (directory, name, extension) triple that locates a tracked
// file on disk. The zero value means the file has never been given a location.
// All three fields are assigned together; a partially filled Identity only
// happens for paths like "/dir/.hidden" where the name segment is empty.
type Identity struct {
	Directory string
	Name      string
	Extension string
}

// IdentityFromPath splits an absolute path into its identity triple. The name
// is everything before the first dot of the filename while the extension is
// the last dot onward. The split is intentionally asymmetric: "a.b.tar.gz"
// gives name "a" and extension ".gz". No filesystem access happens here.
func IdentityFromPath(path string) Identity {
	base := filepath.Base(path)

	return Identity{
		Directory: filepath.Dir(path),
		Name:      strings.Split(base, ".")[0],
		Extension: filepath.Ext(path),
	}
}

// Complete reports whether every field of the identity is set.
func (i Identity) Complete() bool {
	return len(i.Missing()) == 0
}

// Missing returns the names of the unset fields, always in the order
// name, extension, directory.
func (i Identity) Missing() []string {
	var missing []string

	if i.Name == "" {
		missing = append(missing, "name")
	}
	if i.Extension == "" {
		missing = append(missing, "extension")
	}
	if i.Directory == "" {
		missing = append(missing, "directory")
	}

	return missing
}

// AbsolutePath joins the triple back into the file's on-disk path.
func (i Identity) AbsolutePath() (string, error) {
	if missing := i.Missing(); len(missing) > 0 {
		return "", &IncompleteIdentityError{Op: "path", Missing: missing}
	}

	return filepath.Join(i.Directory, i.Name+i.Extension), nil
}
