/*
Package observability exposes run statistics as Prometheus metrics.

Metrics attaches to a run through domain.LifecycleHooks and records one
sample per source: bytes read, lines emitted and squeezed, and failures.
It registers on its own registry, so embedding catena never pollutes the
host's default registerer.
*/
package observability
