// Package adapter contains clients for external collaborators.
//
// Its single adapter today is the HTTP client for the downstream ML
// prediction service. The downstream is treated strictly as a black box:
// the adapter relays validated payloads, bounds every call with a timeout
// and a bounded retry budget, and never lets raw transport errors escape
// past its own sentinel.
package adapter
