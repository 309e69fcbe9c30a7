// Package siteconfig assembles the configuration record handed to the
// documentation site build: a path prefix and an ordered plugin pipeline whose
// theme entry carries the shared theme options merged with local site identity.
//
// The assembler is pure. Base theme options are injected by the caller, inputs
// are never mutated and results never alias them, so repeated calls with the
// same inputs yield deep-equal records.
package siteconfig
