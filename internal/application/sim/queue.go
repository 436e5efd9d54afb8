package sim

import (
	"container/heap"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

// delayed is a despawn waiting for its fire time
type delayed struct {
	at float64 // sim time in seconds
	id entity.EntityID
}

// delayQueue is a min-heap ordered by fire time, then entity id
type delayQueue []delayed

func (q delayQueue) Len() int { return len(q) }

func (q delayQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].id < q[j].id
}

func (q delayQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *delayQueue) Push(x any) { *q = append(*q, x.(delayed)) }

func (q *delayQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// push schedules id at time at
func (q *delayQueue) push(at float64, id entity.EntityID) {
	heap.Push(q, delayed{at: at, id: id})
}

// popDue removes and returns the next entry due at or before now
func (q *delayQueue) popDue(now float64) (entity.EntityID, bool) {
	if len(*q) == 0 || (*q)[0].at > now {
		return 0, false
	}
	return heap.Pop(q).(delayed).id, true
}
