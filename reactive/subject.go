package reactive

// Subject is both an Observer and an Observable: a multicast hub that
// forwards every value it receives to each currently-subscribed observer,
// in subscription order. It is the tap point used throughout this library
// wherever a change-tracking collection needs to publish to multiple
// downstream subscribers.
//
// Subject is not safe for concurrent use, matching spec.md §5's
// single-threaded cooperative model.
type Subject[T any] struct {
	observers []*subjectSubscription[T]
	completed bool
	err       error
	nextID    uint64
}

// NewSubject returns an empty Subject with no subscribers.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

type subjectSubscription[T any] struct {
	id       uint64
	observer Observer[T]
	subject  *Subject[T]
}

// Subscribe registers observer to receive subsequent OnNext/OnError/
// OnCompleted calls. If the subject has already terminated, the matching
// terminal call is delivered immediately and synchronously, and the
// returned Disposable is a no-op.
func (s *Subject[T]) Subscribe(observer Observer[T]) Disposable {
	if s.completed {
		if s.err != nil {
			observer.OnError(s.err)
		} else {
			observer.OnCompleted()
		}
		return noopDisposable
	}

	s.nextID++
	sub := &subjectSubscription[T]{id: s.nextID, observer: observer, subject: s}
	s.observers = append(s.observers, sub)
	return DisposableFunc(func() { s.remove(sub.id) })
}

func (s *Subject[T]) remove(id uint64) {
	for i, sub := range s.observers {
		if sub.id == id {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// HasObservers reports whether any subscription is currently active.
func (s *Subject[T]) HasObservers() bool {
	return len(s.observers) > 0
}

// OnNext pushes value to every current subscriber, in subscription order.
// Subscribers that unsubscribe from within their own OnNext callback do not
// observe the rest of this broadcast; subscribers added during the
// broadcast do not observe it either — both follow from snapshotting the
// observer list before iterating.
func (s *Subject[T]) OnNext(value T) {
	if s.completed {
		return
	}
	snapshot := make([]*subjectSubscription[T], len(s.observers))
	copy(snapshot, s.observers)
	for _, sub := range snapshot {
		sub.observer.OnNext(value)
	}
}

// OnError terminates the subject with err, notifying every current
// subscriber and releasing them.
func (s *Subject[T]) OnError(err error) {
	if s.completed {
		return
	}
	s.completed = true
	s.err = err
	snapshot := s.observers
	s.observers = nil
	for _, sub := range snapshot {
		sub.observer.OnError(err)
	}
}

// OnCompleted terminates the subject successfully, notifying every current
// subscriber and releasing them.
func (s *Subject[T]) OnCompleted() {
	if s.completed {
		return
	}
	s.completed = true
	snapshot := s.observers
	s.observers = nil
	for _, sub := range snapshot {
		sub.observer.OnCompleted()
	}
}
