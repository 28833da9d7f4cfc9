// Package notify provides a small generic observer primitive: a Signal that
// delivers emitted values to subscribed handlers synchronously and in
// registration order.
//
// Signal is intended for in-process lifecycle notifications where the
// emitter must know that every observer has seen the value before it
// proceeds. For fan-out to independent consumers that may be slow, prefer a
// channel-based broadcaster instead.
//
// # Usage
//
//	var changed notify.Signal[string]
//
//	unsubscribe := changed.Subscribe(func(name string) {
//	    log.Println("changed:", name)
//	})
//	defer unsubscribe()
//
//	changed.Emit("profile") // returns after the handler has run
package notify
