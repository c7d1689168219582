//go:build !(linux || darwin)

package diskspace

import "errors"

// Free is not implemented on this platform.
func Free(_ string) (uint64, error) {
	return 0, errors.New("querying free disk space is not supported on this platform")
}
