// Package randtok generates random symbol sequences from a caller-defined alphabet.
// A Generator owns a copy of its charset and draws symbols through an injectable
// index picker, so deterministic pickers can be substituted in tests and the
// default process-wide pseudo-random source is seeded exactly once no matter how
// many generators are constructed.
package randtok
