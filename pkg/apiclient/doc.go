// Package apiclient is the single HTTP surface between the SDK and
// the marketplace REST API.
//
// One Client instance is shared by every service. It owns the pooled
// transport, the per-request timeout, an optional client-side rate
// limiter, and bearer-token injection through a TokenSource callback,
// so the session layer can rotate tokens without the services
// noticing. When the source reports no token, the Authorization header
// is omitted entirely rather than sent empty.
//
// # Error classification
//
// Failures resolve to one of two shapes:
//
//   - *Error for any non-2xx HTTP response, carrying the status code
//     and the server's own message unmodified;
//   - ErrUnavailable (wrapped) for transport failures where no
//     response was received.
//
// IsUnauthorized and IsUnavailable answer the two questions the
// session guard cares about: "did the server reject my token?" versus
// "could I not reach the server at all?". The distinction matters -
// only the former justifies a refresh attempt.
//
// # Usage
//
//	client, err := apiclient.New(cfg,
//	    apiclient.WithTokenSource(func(ctx context.Context) (string, bool) {
//	        sess, err := store.Get(ctx)
//	        return sess.Token, err == nil
//	    }),
//	)
package apiclient
