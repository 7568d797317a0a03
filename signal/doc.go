// Package signal provides the push-based value streams that sigwatch's test
// helpers observe.
//
// A Signal delivers values synchronously to its observers on the emitting
// goroutine. Two implementations are provided:
//
//   - Subject is cold: a value reaches only the observers subscribed at the
//     moment it is emitted. Late subscribers miss it.
//   - Replay is hot: it records everything its source emits and replays the
//     full history to every new subscriber before delivering live values.
//
// Typical use in a test:
//
//	src := signal.NewSubject[string]()
//	hot := signal.NewReplay[string](src)
//	conn := hot.Connect()
//	defer conn.Unsubscribe()
//
//	src.Next("a")
//	hot.Subscribe(signal.Func(func(v string) { /* receives "a" */ }))
package signal
