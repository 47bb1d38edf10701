// Package eventbus provides a small synchronous publish/subscribe hub
// for in-process domain notifications, such as "a background image was
// added" fanning out from the data layer to whatever views currently
// care.
//
// Delivery is synchronous and ordered: Publish invokes every handler
// registered for the event type, in registration order, on the
// caller's goroutine, and returns only when all of them have run.
// Subscribers registered after a publish never see that event; there
// is no buffering or replay.
//
// Handlers are isolated from each other. A panic in one handler is
// recovered and logged, and the remaining handlers still run.
//
//	bus := eventbus.New()
//	off := bus.Subscribe("background.added", func(ctx context.Context, evt eventbus.Event) {
//	    bg := evt.Payload.(apiclient.Background)
//	    refreshGallery(bg)
//	})
//	defer off()
//
// The unsubscribe function returned by Subscribe may be called any
// number of times; calls after the first are no-ops.
package eventbus
