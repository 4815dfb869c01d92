//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly

package proc

import "github.com/pranshuparmar/ps2gv/pkg/model"

// illumos and Solaris report zones but have no cgroups.
const (
	psColumns    = "zone,ppid,pid,rss,pcpu,comm"
	liveFormat   = model.FormatZone
	resolveUnits = false
)
