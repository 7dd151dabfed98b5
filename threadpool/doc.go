// Package threadpool provides the external collaborator interfaces the
// worklist packages need — thread/package (NUMA domain) topology and
// per-thread storage — plus a default implementation sized from the
// host's actual CPU quota.
//
// The worklist never discovers "the current thread" implicitly the way
// the C++ original's Substrate::ThreadPool::getTID() does: Go has no
// stable, cheap notion of "which OS thread is this goroutine pinned to"
// short of parsing runtime.Stack output, which is fragile and was judged
// not worth the complexity here. Every operation that needs a thread
// identity takes it as an explicit tid parameter instead — the caller
// (a worker goroutine launched with a known slot index) always has it
// on hand already.
package threadpool
