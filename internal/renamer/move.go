package renamer

import (
	"os"

	"github.com/pkg/errors"
)

// ErrDestinationExists is returned by Move when the target name is taken.
var ErrDestinationExists = errors.New("destination already exists")

// Move relocates src to dst without ever replacing an existing dst.
// On failure src is left untouched.
//
// The existence check and the rename are two steps; concurrent writers to
// the import directory can still race between them.
func Move(src, dst string) error {
	// os.Rename silently replaces an existing file on Unix, so the
	// destination has to be checked first. Lstat is used so that a dangling
	// symlink still counts as taken.
	if _, err := os.Lstat(dst); err == nil {
		return errors.Wrapf(ErrDestinationExists, "move %s", dst)
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "stat %s", dst)
	}

	// No copy fallback: a rename across filesystems fails and the entry
	// is reported as not movable.
	if err := os.Rename(src, dst); err != nil {
		return errors.Wrapf(err, "move %s", src)
	}
	return nil
}
