package contract

import (
	"context"
	"fmt"
	"os"
)

// LocalContentSource implements the ContentSource interface by reading
// documents from the local filesystem. The source identifier is the
// file path.
type LocalContentSource struct{}

var _ ContentSource = &LocalContentSource{} // Compile-time check

// NewLocalContentSource creates a new instance of the local content source.
func NewLocalContentSource() *LocalContentSource {
	return &LocalContentSource{}
}

// Read implements the ContentSource interface.
func (s *LocalContentSource) Read(ctx context.Context, sourceID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(sourceID)
	if err != nil {
		return "", fmt.Errorf("cannot read document %q: %w", sourceID, err)
	}
	return string(data), nil
}
