// Package tomlquery reads and mutates values inside a configuration
// document tree addressed by path strings such as "server.listeners[0].port".
//
// A path is a '.'-separated sequence of table keys, with array access
// written as "[N]" attached directly to the preceding key and "[]" marking
// an append at the end of an array:
//
//	doc := tomlquery.New(root)
//	port, err := doc.ReadInt("server.listeners[0].port")
//	err = doc.Set("server.listeners[0].port", ir.FromInt(8080))
//	err = doc.Insert("server.hosts[]", ir.FromString("example.com"))
//
// The tree itself lives in package ir; package token parses path strings
// into segments and package resolve walks them. Every failure is a typed,
// recoverable value: errors.Is against ErrParse, ErrNotFound,
// ErrTypeMismatch and ErrExists distinguishes the failure kinds.
package tomlquery
