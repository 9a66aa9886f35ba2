/*
Package agent is the parent of the packages the protocol state machines are
built on. The agent package is empty itself. All the functionality is inside
sub-packages.

Summary of the packages:

	aries       wire codec of the Aries messages
	didcomm     message interface and the common headers of the messages
	handle      registry of the handles the api gives out
	pairwise    our side of one relationship and its cloud agent
	pltype      message type URIs of the supported protocols
	prot        message routing and the update loop shared by the protocols
	ssi         wallet: pairwise keys, signatures and message envelopes
	status      numeric state codes and protocol outcomes
	storage     bbolt backed key value stores
	trans       transport to the peers and the relay service
	utils       settings, nonces and base64 helpers
	validation  checks of DIDs, verkeys and URLs
	vcxerr      typed error kinds of the public operations
*/
package agent
