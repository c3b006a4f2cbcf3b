package bounded_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/bounded"
)

// BenchmarkStack_PushPop fills and drains a stack of N ints.
func BenchmarkStack_PushPop(b *testing.B) {
	const N = 4096
	s, _ := bounded.NewStack[int](N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < N; j++ {
			_ = s.Push(j)
		}
		for !s.IsEmpty() {
			_, _ = s.Pop()
		}
	}
}

// BenchmarkQueue_EnqueueDequeue fills and drains a queue of N ints.
func BenchmarkQueue_EnqueueDequeue(b *testing.B) {
	const N = 4096
	q, _ := bounded.NewQueue[int](N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < N; j++ {
			_ = q.Enqueue(j)
		}
		for !q.IsEmpty() {
			_, _ = q.Dequeue()
		}
	}
}
