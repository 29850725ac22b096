// Package resource provides the two resource-arbitration primitives the
// core simulation contends over: Container, a level-bounded resource (RAM)
// with blocking Get/Put, and Semaphore, a counting resource (CPU cores)
// with blocking Request/Release. Both enforce strict head-of-line FIFO
// queue discipline: a waiter that cannot yet be satisfied blocks every
// waiter behind it, so no later, satisfiable waiter is served out of order.
package resource
