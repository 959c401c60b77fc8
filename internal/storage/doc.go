package storage

// Package storage persists the board as a single JSON blob on disk and
// handles the import/export wire format. The board is loaded whole at
// startup and saved whole after every mutation; there is no incremental
// diffing. Import validation is structural and shallow by design.
