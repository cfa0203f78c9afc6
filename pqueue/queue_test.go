package pqueue_test

import (
	"testing"

	"github.com/slwu89/ctde-go/pqueue"
)

func TestEmptyQueue(t *testing.T) {
	q := pqueue.New[string]()
	if q.Len() != 0 {
		t.Fail()
	}
	if _, _, ok := q.Peek(); ok {
		t.Fail()
	}
	if _, _, ok := q.Pop(); ok {
		t.Fail()
	}
}

func TestPushPeekOrdersByTime(t *testing.T) {
	q := pqueue.New[string]()
	q.Push(3.0, "c")
	q.Push(1.0, "a")
	q.Push(2.0, "b")

	time, key, ok := q.Peek()
	if !ok || time != 1.0 || key != "a" {
		t.Fail()
	}
	if q.Len() != 3 {
		t.Fail()
	}
}

func TestPopDrainsInTimeOrder(t *testing.T) {
	q := pqueue.New[string]()
	q.Push(3.0, "c")
	q.Push(1.0, "a")
	q.Push(2.0, "b")

	want := []string{"a", "b", "c"}
	for _, w := range want {
		_, key, ok := q.Pop()
		if !ok || key != w {
			t.Fail()
		}
	}
	if q.Len() != 0 {
		t.Fail()
	}
}

func TestUpdateKeyDecrease(t *testing.T) {
	q := pqueue.New[string]()
	ha := q.Push(5.0, "a")
	q.Push(6.0, "b")

	if !q.UpdateKey(ha, 1.0) {
		t.Fail()
	}
	_, key, ok := q.Peek()
	if !ok || key != "a" {
		t.Fail()
	}
}

func TestUpdateKeyIncrease(t *testing.T) {
	q := pqueue.New[string]()
	ha := q.Push(1.0, "a")
	q.Push(6.0, "b")

	if !q.UpdateKey(ha, 10.0) {
		t.Fail()
	}
	_, key, ok := q.Peek()
	if !ok || key != "b" {
		t.Fail()
	}
}

func TestUpdateKeyUnknownHandle(t *testing.T) {
	q := pqueue.New[string]()
	if q.UpdateKey(pqueue.Handle(9999), 1.0) {
		t.Fail()
	}
}

func TestRemoveByHandleMiddleOfHeap(t *testing.T) {
	q := pqueue.New[string]()
	q.Push(1.0, "a")
	hb := q.Push(2.0, "b")
	q.Push(3.0, "c")

	key, ok := q.RemoveByHandle(hb)
	if !ok || key != "b" {
		t.Fail()
	}
	if q.Len() != 2 {
		t.Fail()
	}

	want := []string{"a", "c"}
	for _, w := range want {
		_, key, ok := q.Pop()
		if !ok || key != w {
			t.Fail()
		}
	}
}

func TestRemoveByHandleUnknown(t *testing.T) {
	q := pqueue.New[string]()
	if _, ok := q.RemoveByHandle(pqueue.Handle(42)); ok {
		t.Fail()
	}
}

func TestTimeReflectsLiveEntry(t *testing.T) {
	q := pqueue.New[string]()
	h := q.Push(4.5, "a")
	time, ok := q.Time(h)
	if !ok || time != 4.5 {
		t.Fail()
	}

	q.Pop()
	if _, ok := q.Time(h); ok {
		t.Fail()
	}
}

func TestHandlesSurviveManySifts(t *testing.T) {
	q := pqueue.New[int]()
	handles := make([]pqueue.Handle, 20)
	for i := range handles {
		handles[i] = q.Push(float64(20-i), i)
	}

	for i, h := range handles {
		if !q.UpdateKey(h, float64(i)) {
			t.Fail()
		}
	}

	for i := 0; i < 20; i++ {
		_, key, ok := q.Pop()
		if !ok || key != i {
			t.Fail()
		}
	}
}
