package types

// CleanResult holds the outcome of a removal attempt for a single matched entry
type CleanResult struct {
	Path    string
	Removed bool
	DryRun  bool
	Error   error
}
