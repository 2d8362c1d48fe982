// Package kernel implements a minimal cooperative, event-driven task
// executor for single-address-space targets: a fixed-priority scheduling
// loop, a bit-flag event table, and a delta-encoded timeout list.
//
// # Architecture
//
// A [Scheduler] owns a fixed table of [Task] values and drives them from a
// single call to [Scheduler.Start], which never returns. Each [Task] carries
// a 32-bit ready-flag word; application code binds up to 32 [Event] values
// per task via [Scheduler.Bind], raises them from any context (including
// interrupt context, via the ISR variants) with [Scheduler.Post], and a
// running task body inspects which bits fired for the current dispatch via
// [Scheduler.Assert].
//
// A companion delta-encoded linked list ([Scheduler.TimeoutStart],
// [Scheduler.TimeoutStop], [Scheduler.TickHandle]) lets a periodic tick
// source (typically a hardware timer interrupt) arm and fire timeouts that
// post bits into the same event table, without per-timer allocation.
//
// # Scheduling discipline
//
// Tasks are scanned in table order starting from index 0. The scan
// restarts from index 0 after every dispatch, so a lower-index task that is
// repeatedly made ready will starve every higher-index task indefinitely.
// This is fixed-priority behavior by design, not a bug: index order IS
// priority order, and the scheduler never attempts fairness.
//
// # Concurrency
//
// The core itself never spawns a goroutine and performs no locking beyond
// the optional critical-section hooks installed via [WithCriticalSection].
// A single [Scheduler] must only ever have one task body running at a time;
// the caller is responsible for ensuring [Scheduler.Start] runs on exactly
// one thread of execution and that any ISR variant is only called from
// genuine interrupt context.
//
// # Usage
//
//	sched := kernel.New([]kernel.Task{
//	    {Body: blink},
//	    {Body: poll},
//	}, kernel.WithIdleHook(enterLowPower))
//
//	sched.Start() // does not return
package kernel
