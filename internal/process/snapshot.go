package process

import (
	"strings"

	"github.com/pranshuparmar/ps2gv/pkg/model"
)

// snapshotHeader is the zone layout with the trailing UNIT column that
// Parse recognises.
const snapshotHeader = "ZONE PPID PID RSS %CPU COMMAND UNIT"

// Snapshot writes records back out as a process table that keeps their
// resolved units, so a replay does not need the original host's cgroups.
func Snapshot(records []model.ProcessRecord) string {
	var b strings.Builder
	b.WriteString(snapshotHeader)
	b.WriteByte('\n')
	for _, r := range records {
		cols := []string{r.Zone, r.PPID, r.PID, r.RSS, r.PCPU, r.Command, r.Unit}
		for i, c := range cols {
			if strings.TrimSpace(c) == "" {
				cols[i] = model.NotApplicable
			}
		}
		b.WriteString(strings.Join(cols, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
