/*
Package domain contains the core models of the catena concatenation engine.

It defines the immutable run Configuration, the error values that cross the
boundary between the input resolvers and the transducer, and the lifecycle
events emitted while sources are consumed. The package has no I/O of its own.

# Key Entities

  - Config: what transformations a run applies (numbering, squeezing, markers, escaping).
  - Marker: an optional literal, such as the end-of-line or tab marker.
  - SourceError: an I/O failure tied to the path token that caused it.
  - LifecycleHooks: optional callbacks observing each source of a run.
*/
package domain
