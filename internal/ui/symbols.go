package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Host completed successfully
	SymbolFail     = "✗" // Host failed
	SymbolPending  = "○" // Not yet started
	SymbolProgress = "◐" // In progress
	SymbolComplete = "●" // Done (alternative to success)
)
