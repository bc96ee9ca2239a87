// Package instream provides whitespace-delimited, type-directed scanning of
// values from buffered byte sources.
//
// [Next] and [NextLimit] extract the next token from a [Stream] and parse it
// as a primitive type. [NextFunc] does the same with a caller-supplied parse
// function for arbitrary types.
//
// A [Stream] is itself a [Source], so streams can be layered over one
// another.
package instream
