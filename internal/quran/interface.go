package quran

import "context"

// ClientInterface defines the verse-search API operations.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	Search(ctx context.Context, keyword, scope, edition string) (*SearchResult, error)
	Ayah(ctx context.Context, surah, ayah int, edition string) (*AyahData, error)
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)
