// Package modes holds the SM712 display mode table and selects entries from
// it.
//
// A mode is a complete register dump: the miscellaneous output byte plus one
// byte slice per register group (see [Group]). Slices are positional, index 0
// being the lowest register of the group, so every slice must have exactly
// the group's size. [NewTable] enforces this once when a table is built and
// nothing checks it again afterwards.
//
// Tables never change after construction and are safe for concurrent use.
package modes
