// Package giftchain is the Go client SDK for the GiftChain NFT
// gift-card marketplace. It maintains a bearer-token wallet session
// against the marketplace REST API, repairs the session when it is
// about to expire or has been revoked, tracks pending blockchain
// confirmations by polling, and exposes the gift-card, background-NFT,
// and assistant endpoints as thin typed services.
//
// The pieces live in focused packages under pkg/ and can be wired
// individually; New assembles the default arrangement:
//
//	var cfg giftchain.Config
//	config.MustLoad(&cfg)
//
//	sdk, err := giftchain.New(cfg)
//	if err != nil {
//	    // handle error
//	}
//	defer sdk.Close()
//
//	if res := sdk.Guard.EnsureUsable(ctx); !res.Authenticated {
//	    // connect wallet / re-login, see res.Message
//	}
//
//	bg, err := sdk.Backgrounds.Mint(ctx, imageURL, "sunset")
//	// subscribe to background.updated on sdk.Bus for the confirmation
//
// Everything stateful is explicitly constructed: no package-level
// singletons, no hidden storage. Tests substitute an in-memory
// session store and a httptest server.
package giftchain
