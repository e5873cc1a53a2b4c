// Package source provides configuration sources: backends that answer a
// query for an environment with an immutable [Configuration] snapshot.
//
// Every query re-resolves, re-discovers, and re-merges; no source caches
// across calls. Callers wanting caching or polling layer it on top. The
// snapshot is a value: safe to share between goroutines, never updated in
// place.
//
// Sources holding external resources (see [HTTPSource]) additionally
// implement [Lifecycle]; querying them outside the Init/Close window fails
// with [ErrLifecycle].
package source
