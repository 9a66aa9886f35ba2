/*
Package protocol is the parent of the protocol state machines. Every
subpackage implements one role of an Aries protocol as a closed set of states
where a transition replaces the whole state. The wire messages of the
protocols are in the std package and the protocol independent routing of the
pending messages is in agent/prot.

The connection protocol runs over the relay transport directly. Issue
credential and present proof run over an established connection which they
get as core.Conn.
*/
package protocol
