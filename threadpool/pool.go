package threadpool

import (
	"runtime"

	"go.uber.org/automaxprocs/maxprocs"
)

// Pool is the topology collaborator the worklist's StealingQueue needs:
// how many worker threads are active, which package (NUMA/socket domain)
// each belongs to, and which threads are package leaders (permitted to
// steal across packages). It corresponds to the spec's ThreadPool
// interface, minus CurrentTid — see the package doc for why.
type Pool interface {
	// ActiveThreads returns the number of worker slots currently in use.
	ActiveThreads() int

	// Package returns the package (NUMA/socket domain) id for tid.
	Package(tid int) int

	// IsLeader reports whether tid is the designated cross-package
	// stealer for its package.
	IsLeader(tid int) bool

	// IsLeaderSelf is the same check, spelled for a caller that knows
	// its own tid but is asking "am I the leader" as a standalone
	// question. StealingQueue does not use it; it calls IsLeader
	// directly.
	IsLeaderSelf(tid int) bool
}

// StaticPool is a fixed-size Pool that assigns threads to packages
// round-robin and designates the lowest-numbered thread in each package
// as its leader.
type StaticPool struct {
	threads  int
	packages int
}

// NewStaticPool builds a pool of the given thread count split across the
// given number of packages (NUMA domains). threads and packages below 1
// are raised to 1, and packages is capped at threads. Threads are dealt
// to packages round-robin (tid % packages), so if packages does not
// evenly divide threads, the lowest-numbered packages get one extra
// thread each.
func NewStaticPool(threads, packages int) *StaticPool {
	if threads < 1 {
		threads = 1
	}
	if packages < 1 {
		packages = 1
	}
	if packages > threads {
		packages = threads
	}
	return &StaticPool{threads: threads, packages: packages}
}

// NewDefaultStaticPool sizes a pool of the given package count from the process'
// actual CPU quota (container cgroup limits, not just the host's raw
// core count) via go.uber.org/automaxprocs, the same library the rest
// of the retrieved pack reaches for to make GOMAXPROCS container-aware.
// The returned undo func restores the prior GOMAXPROCS value and should
// be deferred by callers that do not want the change to outlive them.
func NewDefaultStaticPool(packages int) (*StaticPool, func(), error) {
	undo, err := maxprocs.Set()
	if err != nil {
		return nil, func() {}, err
	}
	return NewStaticPool(runtime.GOMAXPROCS(0), packages), undo, nil
}

func (p *StaticPool) ActiveThreads() int { return p.threads }

func (p *StaticPool) Package(tid int) int {
	return tid % p.packages
}

func (p *StaticPool) IsLeader(tid int) bool {
	return tid < p.packages
}

func (p *StaticPool) IsLeaderSelf(tid int) bool {
	return p.IsLeader(tid)
}
