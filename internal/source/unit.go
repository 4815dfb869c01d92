package source

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/patrickmn/go-cache"

	"github.com/pranshuparmar/ps2gv/internal/log"
	"github.com/pranshuparmar/ps2gv/internal/process"
	"github.com/pranshuparmar/ps2gv/pkg/model"
)

var procPath = "/proc"

// unitPattern matches a path segment naming a service or timer unit.
// Scopes, sockets and mounts are deliberately not matched: they are too
// fine-grained to be useful as a colour key.
var unitPattern = regexp.MustCompile(`([^/\n]+\.(service|timer))`)

// ExtractUnit scans cgroup membership text in order and returns the last
// service or timer unit it names. Nested units appear after their parents,
// so the last match is the most specific one. Returns model.NotApplicable
// when nothing matches.
func ExtractUnit(cgroup string) string {
	unit := model.NotApplicable
	for _, m := range unitPattern.FindAllStringSubmatch(cgroup, -1) {
		unit = m[1]
	}
	return unit
}

// Resolver maps pids to their owning systemd unit by reading
// /proc/<pid>/cgroup. Lookups are memoized for the lifetime of the
// Resolver, so it should not outlive one process table.
type Resolver struct {
	memo     *cache.Cache
	readFile func(string) ([]byte, error)
}

func NewResolver() *Resolver {
	return &Resolver{
		memo:     cache.New(cache.NoExpiration, 0),
		readFile: os.ReadFile,
	}
}

// Resolve never fails: a process that exited or can't be inspected
// resolves to model.NotApplicable.
func (r *Resolver) Resolve(pid string) string {
	if !process.IsPID(pid) {
		return model.NotApplicable
	}
	if unit, found := r.memo.Get(pid); found {
		return unit.(string)
	}

	unit := model.NotApplicable
	data, err := r.readFile(filepath.Join(procPath, pid, "cgroup"))
	if err != nil {
		log.Debugf("no cgroup for pid %s: %v", pid, err)
	} else {
		unit = ExtractUnit(string(data))
	}

	r.memo.Set(pid, unit, cache.NoExpiration)
	return unit
}

// Resolved returns how many pids have been looked up so far.
func (r *Resolver) Resolved() int {
	return r.memo.ItemCount()
}
