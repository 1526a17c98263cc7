// Package generator provides resumable producers: functions that emit a
// sequence of values one at a time, suspending after each value and resuming
// exactly where they left off when the consumer asks for the next one. A
// producer keeps ordinary control flow, including arbitrarily deep recursion,
// across suspension points, so naturally recursive producers (an in-order
// walk of a binary tree, for example) never have to be rewritten as explicit
// state machines. Any number of instances of the same producer can be alive
// at once over the same read-only data, each with its own private position.
//
// Two interchangeable backends implement the suspend/resume handoff and
// present an identical contract. The default backend runs the producer on its
// own independently switchable stack and transfers control with a direct
// context switch; only one flow is ever runnable by construction, so it needs
// no locks. The alternative backend, selected with WithThreadWorker, runs the
// producer on a dedicated worker and enforces the same strict alternation
// with a mutex and a pair of condition variables.
//
// A generator is created with New, driven with Next, and released with
// Destroy. Destroy is always safe: a producer that has not finished is
// unblocked once and retired, its stack unwound, before Destroy returns.
// Panics inside a producer are captured together with their stack trace and
// rethrown to the caller of Next.
package generator
