// Package confirm tracks long-running blockchain-confirmation
// operations by polling a status endpoint until each one terminates.
//
// The state machine per operation id is
//
//	Idle → Polling → {Confirmed, Failed, Cancelled}
//
// with all three right-hand states terminal. Start is single-flight
// per id (a second Start before the first completes is a no-op) and
// every active operation owns exactly one timer, cancelled on terminal
// transition, explicit Cancel, or owner teardown via Close - interval
// timers must never outlive their owner in a long-lived session.
//
// Transient status-check failures are logged and swallowed; polling
// continues unbounded until the operation terminates remotely or is
// cancelled. There is deliberately no retry budget: an operation
// waiting on a congested chain may legitimately stay pending for a
// long time, and the owner's teardown is the backstop against polling
// forever.
//
// Terminal outcomes fan out through the injected event bus as
// EventOperationConfirmed / EventOperationFailed with an Outcome
// payload. Cancellation publishes nothing; a response that arrives
// after its operation was cancelled is discarded unseen.
package confirm
