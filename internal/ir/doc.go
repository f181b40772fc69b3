// Package ir provides the canonical encoding used for content-addressed
// identity of observation sequences and recovered parameters.
//
// ir imports nothing internal. Big integers are always carried as decimal
// strings in serialized form; there are no floats anywhere.
package ir
