/*
Package main is the vcx CLI. The module implements Aries agent protocols for
the verifiable credential exchange:

1. The connection protocol (RFC 0160) in both roles, with trust ping and
discover features inside the established connection.

2. The issue credential protocol 1.0 for the issuer and the holder.

3. The present proof protocol 1.0 for the prover and the verifier.

The protocol objects are reached by opaque handles through package api which
passes the objects and messages as JSON strings. Keys live in the agent's own
wallet and the messages travel through a relay agency which provisions a
cloud agent for every pairwise. The CLI runs the relay and the connection
protocol against it:

	vcx relay --address :8080 --base-url http://localhost:8080
	vcx connection create --name bob --db-name alice.bolt
	vcx connection accept invitation.json --name alice --db-name bob.bolt

The anoncreds operations are collaborators given by the caller, see package
core.
*/
package main
