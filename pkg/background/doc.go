// Package background handles background-image NFTs: listing the
// caller's collection, submitting new images for minting, and
// translating mint confirmations into domain events.
//
// Minting is asynchronous on the backend. Mint returns as soon as the
// server accepts the request, publishes EventAdded, and registers the
// background with the confirmation poller; when the chain confirms (or
// rejects) the mint, subscribers receive EventUpdated with the final
// blockchain id. Wiring order matters only in one place: the poller
// needs a status checker before the service exists, which is what
// NewStatusChecker is for.
//
//	checker, _ := background.NewStatusChecker(client)
//	poller, _ := confirm.New(checker, bus)
//	svc, _ := background.NewService(client, bus, background.WithConfirmations(poller))
//	defer svc.Close()
package background
