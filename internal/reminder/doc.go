package reminder

// Package reminder scans memos on a fixed interval and fires advance and final
// notifications. Each memo moves Idle -> AdvanceNotified -> FinalNotified, at
// most one step per scan, and the flags are persisted before the side effects
// run so a notification is never repeated.
