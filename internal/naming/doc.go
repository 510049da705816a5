// Package naming derives accessor names from raw field identifiers.
//
// The transform turns conventional field spellings into a capitalized camel
// fragment that can be spliced between an accessor prefix and postfix:
//   - "_health" -> "Health"
//   - "move_speed" -> "MoveSpeed"
//   - "x" -> "X"
//
// The transform is not idempotent: "a__b" becomes "A_b", and transforming
// that again gives "AB".
package naming
