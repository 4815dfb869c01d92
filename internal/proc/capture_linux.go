//go:build linux

package proc

import "github.com/pranshuparmar/ps2gv/pkg/model"

const (
	psColumns    = "zone,ppid,pid,rss,pcpu,comm"
	liveFormat   = model.FormatZone
	resolveUnits = true
)
