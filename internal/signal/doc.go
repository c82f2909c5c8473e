// Package signal generates the synthetic ground motion drawn by the traces.
//
// All randomness comes from an injected Source so tests can pin the draws.
package signal
