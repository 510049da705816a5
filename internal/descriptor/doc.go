// Package descriptor models the type and field metadata the wrapper emitter
// consumes, and renders type references in C# source form.
//
// A Type is identified by its namespace and simple name; generic types carry
// their ordered type arguments. Render produces the spelling used in
// generated source:
//   - "System.Int32"
//   - "System.Collections.Generic.List<Game.Item>"
//   - "System.Collections.Generic.Dictionary<System.String, System.Collections.Generic.List<System.Int32>>"
//
// ParseType accepts the same spelling (the CLR arity suffix "List`1" is also
// understood) so catalogs can describe field types as plain strings.
package descriptor
