//go:build darwin || freebsd || openbsd || netbsd || dragonfly

package proc

import "github.com/pranshuparmar/ps2gv/pkg/model"

// BSD-style ps has no zone column and no cgroups to resolve units from.
const (
	psColumns    = "ppid,pid,rss,pcpu,comm"
	liveFormat   = model.FormatReduced
	resolveUnits = false
)
