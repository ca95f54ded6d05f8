package study

import (
	"fmt"
	"time"
)

// FormatElapsed renders d as zero-padded mm:ss. Minutes are not wrapped into
// hours, so 75 minutes and 3 seconds is "75:03".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
