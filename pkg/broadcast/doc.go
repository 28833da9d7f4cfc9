// Package broadcast provides an in-memory, generic publish/subscribe hub.
//
// A Hub fans published values out to any number of Subscriptions. Publishing
// is always non-blocking: each subscription has a bounded buffer and values
// are dropped for subscriptions that cannot keep up, so a slow consumer can
// never stall the publisher. Subscriptions are scoped to a context and are
// cleaned up automatically when it is cancelled.
//
// # Usage
//
//	hub := broadcast.NewHub[string](16)
//	defer hub.Close()
//
//	sub := hub.Subscribe(ctx)
//	go func() {
//	    for msg := range sub.C() {
//	        fmt.Println(msg)
//	    }
//	}()
//
//	hub.Publish("hello")
package broadcast
