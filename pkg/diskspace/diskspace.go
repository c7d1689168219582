//go:build linux || darwin

package diskspace

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Free returns the number of bytes available to unprivileged users on the
// filesystem containing path.
func Free(path string) (uint64, error) {
	var stat unix.Statfs_t

	if err := unix.Statfs(path, &stat); err != nil {
		return 0, fmt.Errorf("statfs %s: %w", path, err)
	}

	return stat.Bavail * uint64(stat.Bsize), nil //nolint:unconvert // Bsize is int64 on linux, uint32 on darwin
}
