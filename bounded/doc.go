// Package bounded provides fixed-capacity, array-backed containers:
// a last-in-first-out Stack and a first-in-first-out Queue.
//
// Both containers allocate their backing storage once, at construction,
// and never grow. Pushing into a full container fails with
// ErrCapacityExceeded instead of reallocating, so the memory used by a
// search frontier is bounded up front.
//
// Stack
//
//   - Push/Pop/Top operate on the logical top (highest filled slot).
//   - Pop on an empty stack reports ok == false.
//   - Top on an empty stack returns ErrEmptyAccess.
//
// Queue
//
//   - Circular buffer with a front index and a size counter.
//   - Enqueue writes at (front+size) mod capacity, Dequeue reads at front.
//   - First peeks without removing.
//
// Complexity:
//
//   - Time:   O(1) for every operation.
//   - Memory: O(capacity), allocated once.
//
// Errors:
//
//   - ErrBadCapacity       if capacity <= 0 at construction.
//   - ErrCapacityExceeded  on Push/Enqueue into a full container.
//   - ErrEmptyAccess       on Top of an empty stack.
//
// Neither container is safe for concurrent use.
package bounded
