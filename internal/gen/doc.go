// Package gen renders C# reflection wrappers.
//
// One generation request produces one unit, {Type}Extensions.cs, holding a
// static class with a getter/setter extension pair per selected field. The
// accessors look the field up by name through System.Reflection with every
// visibility and storage binding flag set, so they work for fields the
// caller cannot otherwise reach.
//
// Generation approach uses text/template; the only layout rule that
// depends on input is the optional namespace block, which shifts
// everything inside it by one tab.
package gen
