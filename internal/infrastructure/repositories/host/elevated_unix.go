//go:build !windows

package host

import "os"

func isElevated() bool {
	return os.Geteuid() == 0
}
