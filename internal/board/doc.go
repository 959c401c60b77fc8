package board

// Package board owns the groups/favorites graph and every mutation applied
// to it. Mutations are serialized behind one lock, produce a fresh snapshot,
// persist the whole board through the injected store, and notify the UI via
// a callback. Derived view data (orbit positions, search match sets) is
// recomputed from snapshots, never stored.
