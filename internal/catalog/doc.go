// Package catalog loads YAML type catalogs and answers the questions the
// wrapper emitter's caller needs answered: which types make up an
// inheritance chain, which fields those types declare, and which of those
// fields pass the visibility/storage toggles.
//
// Catalog format:
//
//	version: "1"
//	types:
//	  - name: Player
//	    namespace: Game
//	    base: Game.Actor
//	    fields:
//	      - name: _hp
//	        type: System.Int32
//	        visibility: private
//	      - name: _inventory
//	        type: System.Collections.Generic.List<Game.Item>
//	      - name: Count
//	        type: {name: System.Int32}
//	        visibility: public
//	        storage: static
//
// Field types are either a type expression string or a mapping with "name"
// and optional "args". A base may be written relative to the derived type's
// namespace or by a unique simple name. A base type missing from the catalog
// ends the inheritance walk; System.Object is never part of a chain.
//
// Only fields GetField can find on the target type are offered: a base's
// private fields and static fields are not.
package catalog
