// Package queue provides the buffered single-consumer queue behind the
// asynchronous audit and notification dispatchers. One goroutine drains the
// buffer in enqueue order, overflow is counted rather than blocking the
// producer (unless the producer opts into blocking), and Close delivers
// everything still buffered before returning.
package queue
