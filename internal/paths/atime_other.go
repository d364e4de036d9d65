//go:build !linux && !darwin

package paths

import (
	"os"
	"time"
)

func accessTime(fi os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
