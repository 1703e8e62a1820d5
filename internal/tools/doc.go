// Package tools declares the tool catalog exposed to calling agents and
// binds incoming tool calls to the gitops dispatcher.
//
// The catalog is static: one declarative descriptor per operation, with
// typed fields, enumerated values, defaults, and required markers. The
// handlers do no work of their own beyond decoding arguments into the
// operation's typed request and relaying the dispatcher's verdict.
package tools
