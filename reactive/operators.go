package reactive

// Of returns an observable that synchronously emits value and completes.
func Of[T any](value T) Observable[T] {
	return OfFunc(func() T { return value })
}

// OfFunc returns an observable that computes its single value from factory
// at subscribe time, then completes. This is what lets a subscription
// capture a collection's current snapshot at the moment of subscribing
// rather than at the moment the observable was constructed.
func OfFunc[T any](factory func() T) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Disposable {
		observer.OnNext(factory())
		observer.OnCompleted()
		return noopDisposable
	})
}

// Empty returns an observable that completes immediately without emitting
// any value.
func Empty[T any]() Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Disposable {
		observer.OnCompleted()
		return noopDisposable
	})
}

// Never returns an observable that neither emits nor terminates.
func Never[T any]() Observable[T] {
	return ObservableFunc[T](func(Observer[T]) Disposable {
		return noopDisposable
	})
}

// Select maps each value from source through selector.
func Select[T, R any](source Observable[T], selector func(T) R) Observable[R] {
	return ObservableFunc[R](func(observer Observer[R]) Disposable {
		inner := NewObserver(
			func(v T) { observer.OnNext(selector(v)) },
			observer.OnError,
			observer.OnCompleted,
		)
		return source.Subscribe(inner)
	})
}

// Concat subscribes to each source in order, moving to the next only after
// the previous one completes successfully. An error from any source
// terminates the result immediately. The final source may be long-lived
// (never completing on its own) — Concat just keeps forwarding it.
func Concat[T any](sources ...Observable[T]) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Disposable {
		var current Disposable
		disposed := false

		var subscribeNext func(i int)
		subscribeNext = func(i int) {
			if disposed {
				return
			}
			if i >= len(sources) {
				observer.OnCompleted()
				return
			}
			inner := NewObserver(
				observer.OnNext,
				observer.OnError,
				func() { subscribeNext(i + 1) },
			)
			current = sources[i].Subscribe(inner)
		}
		subscribeNext(0)

		return DisposableFunc(func() {
			disposed = true
			if current != nil {
				current.Dispose()
			}
		})
	})
}

// Prepend emits value, then subscribes to source.
func Prepend[T any](source Observable[T], value T) Observable[T] {
	return Concat(Of(value), source)
}

// PrependFunc is Prepend with a value computed lazily at subscribe time.
func PrependFunc[T any](source Observable[T], factory func() T) Observable[T] {
	return Concat(OfFunc(factory), source)
}

// Switch flattens an observable of observables, always forwarding the
// latest inner observable's values and dropping the previous one as soon
// as a new inner observable arrives.
func Switch[T any](source Observable[Observable[T]]) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Disposable {
		var innerSub Disposable
		outerCompleted := false
		innerActive := false
		disposed := false

		checkComplete := func() {
			if outerCompleted && !innerActive && !disposed {
				observer.OnCompleted()
			}
		}

		outerObserver := NewObserver(
			func(inner Observable[T]) {
				if innerSub != nil {
					innerSub.Dispose()
				}
				innerActive = true
				innerObserver := NewObserver(
					observer.OnNext,
					observer.OnError,
					func() {
						innerActive = false
						checkComplete()
					},
				)
				innerSub = inner.Subscribe(innerObserver)
			},
			observer.OnError,
			func() {
				outerCompleted = true
				checkComplete()
			},
		)

		outerSub := source.Subscribe(outerObserver)

		return DisposableFunc(func() {
			disposed = true
			outerSub.Dispose()
			if innerSub != nil {
				innerSub.Dispose()
			}
		})
	})
}

// TakeUntil forwards source's values until notifier emits its first value,
// at which point the result completes and unsubscribes from source.
// Errors and completion from notifier are ignored; only a value on
// notifier ends the stream.
func TakeUntil[T any](source Observable[T], notifier Observable[Unit]) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Disposable {
		var sourceSub, notifierSub Disposable
		terminated := false

		terminate := func() {
			if terminated {
				return
			}
			terminated = true
			if sourceSub != nil {
				sourceSub.Dispose()
			}
			if notifierSub != nil {
				notifierSub.Dispose()
			}
		}

		notifierObserver := NewObserver(
			func(Unit) {
				terminate()
				observer.OnCompleted()
			},
			func(error) {},
			func() {},
		)
		notifierSub = notifier.Subscribe(notifierObserver)

		if !terminated {
			sourceObserver := NewObserver(
				observer.OnNext,
				func(err error) {
					terminate()
					observer.OnError(err)
				},
				func() {
					terminate()
					observer.OnCompleted()
				},
			)
			sourceSub = source.Subscribe(sourceObserver)
		}

		return DisposableFunc(terminate)
	})
}

// Take1 forwards only the first value from source, then completes and
// unsubscribes.
func Take1[T any](source Observable[T]) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Disposable {
		var sub Disposable
		done := false

		inner := NewObserver(
			func(v T) {
				if done {
					return
				}
				done = true
				observer.OnNext(v)
				observer.OnCompleted()
				if sub != nil {
					sub.Dispose()
				}
			},
			func(err error) {
				if done {
					return
				}
				done = true
				observer.OnError(err)
			},
			func() {
				if done {
					return
				}
				done = true
				observer.OnCompleted()
			},
		)
		sub = source.Subscribe(inner)
		if done {
			sub.Dispose()
		}
		return DisposableFunc(func() {
			if sub != nil {
				sub.Dispose()
			}
		})
	})
}

// Finally runs action exactly once, whether source terminates on its own
// or the subscription is disposed first.
func Finally[T any](source Observable[T], action func()) Observable[T] {
	return ObservableFunc[T](func(observer Observer[T]) Disposable {
		ran := false
		runOnce := func() {
			if ran {
				return
			}
			ran = true
			if action != nil {
				action()
			}
		}

		inner := NewObserver(
			observer.OnNext,
			func(err error) {
				runOnce()
				observer.OnError(err)
			},
			func() {
				runOnce()
				observer.OnCompleted()
			},
		)
		sub := source.Subscribe(inner)
		return DisposableFunc(func() {
			sub.Dispose()
			runOnce()
		})
	})
}
