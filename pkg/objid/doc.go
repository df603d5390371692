// Package objid generates short, URL-safe random identifiers from a
// cryptographically secure random source.
//
// Every output character consumes exactly one random byte and is selected as
// alphabet[b % len(alphabet)]. When the alphabet length does not divide 256
// the lowest alphabet indices are marginally more likely than the others.
// This approximation is intentional and keeps the output identical for a given
// byte stream; callers needing perfect uniformity should pick an alphabet whose
// length is a power of two, such as the 64 character default.
//
// Alphabets are plain ordered sequences of characters (runes). Duplicate
// characters are not removed and skew the distribution accordingly.
package objid
