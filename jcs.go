// Package jcs renders values as canonical JSON per RFC 8785, the JSON
// Canonicalization Scheme: object members sorted by the UTF-16 code units of
// their names, numbers in their shortest ECMAScript form and no insignificant
// whitespace. Values that are the same always render to the same bytes, which
// makes the output suitable for hashing and signing.
//
// The value side of the encoder lives in package walk and the canonicalizing
// formatter in package canonical; this package ties the two together.
package jcs

import (
	"bytes"
	"io"

	"github.com/minio/sha256-simd"

	"jcs.mleku.dev/canonical"
	"jcs.mleku.dev/walk"
)

// Version is the version of the module, printed by the command line tool.
const Version = "v0.1.0"

var (
	ErrNonFiniteNumber      = canonical.ErrNonFiniteNumber
	ErrUnbalancedScope      = canonical.ErrUnbalancedScope
	ErrSinkFailure          = canonical.ErrSinkFailure
	ErrMalformedRawFragment = canonical.ErrMalformedRawFragment
)

// ToWriter writes the canonical form of v to w. If it fails w may already hold
// part of the output, which should be discarded.
func ToWriter(w io.Writer, v any) (err error) {
	if err = walk.Value(canonical.New(), w, v); chk.D(err) {
		return
	}
	return
}

// ToBytes returns the canonical form of v. Nothing is returned on failure.
func ToBytes(v any) (b []byte, err error) {
	var buf bytes.Buffer
	if err = ToWriter(&buf, v); err != nil {
		return
	}
	b = buf.Bytes()
	return
}

// ToString is ToBytes returning a string.
func ToString(v any) (s string, err error) {
	var b []byte
	if b, err = ToBytes(v); err != nil {
		return
	}
	s = string(b)
	return
}

// Transform returns the canonical form of the JSON text in data, which must
// hold exactly one JSON value. Duplicate member names are accepted and the
// last one wins.
func Transform(data []byte) (b []byte, err error) {
	var buf bytes.Buffer
	if err = walk.Raw(canonical.New(), &buf, data); chk.D(err) {
		return
	}
	b = buf.Bytes()
	log.T.F("canonicalized %d bytes of JSON into %d", len(data), len(b))
	return
}

// Hash returns the SHA-256 digest of the canonical form of v.
func Hash(v any) (h []byte, err error) {
	var b []byte
	if b, err = ToBytes(v); err != nil {
		return
	}
	sum := sha256.Sum256(b)
	h = sum[:]
	return
}
