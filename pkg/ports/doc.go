/*
Package ports defines the driven ports (interfaces) of the catena engine.

These interfaces decouple the transducer from where its bytes come from, so
the same engine reads OS files, standard input or in-memory fixtures.

# Key Interfaces

  - Source: one opened input stream, tagged with the path token it came from.
  - SourceResolver: maps a path token to a Source.
*/
package ports
