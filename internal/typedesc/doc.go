// Package typedesc is a debug-info stand-in: a
// minimal JSON description of aggregate types (fields, container
// instantiations, pointers, enums) that builds an initial
// *graph.TypeGraph, playing the role of a ClangTypeParser/DrgnExporter
// adapter without attempting to parse any real debug-info format.
//
// A description is a root type name plus a map of named type entries:
//
//	{
//	  "root": "Widget",
//	  "types": {
//	    "Widget": {
//	      "kind": "struct",
//	      "fqname": "ns::Widget",
//	      "size": 32,
//	      "members": [
//	        {"name": "id", "type": "int32", "bit_offset": 0},
//	        {"name": "tags", "type": "TagVector", "bit_offset": 64}
//	      ]
//	    },
//	    "TagVector": {
//	      "kind": "struct",
//	      "fqname": "std::vector<int32_t, std::allocator<int32_t> >",
//	      "size": 24,
//	      "template_params": [{"type": "int32"}, {"type": "WidgetAllocator"}]
//	    },
//	    "WidgetAllocator": {
//	      "kind": "class",
//	      "fqname": "std::allocator<int32_t>",
//	      "size": 1
//	    }
//	  }
//	}
//
// Entry kinds: "struct"/"class"/"union" (aggregates — these get identity
// up front so forward/cyclic references resolve), "enum", "array",
// "typedef", "pointer", "reference", "incomplete". A type reference
// string is either one of the sixteen fixed primitive keywords, an
// "incomplete:<name>" literal, or a key into the description's types map.
package typedesc
