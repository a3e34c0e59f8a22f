package immich

import "context"

// GetDuplicates returns the duplicate clusters Immich has detected
// (Utilities -> Duplicates in the web UI).
func (im *Immich) GetDuplicates(ctx context.Context) ([]DuplicateGroup, error) {
	result, err := doGetJSON[[]DuplicateGroup](ctx, im, "duplicates")
	if err != nil {
		return nil, err
	}
	return *result, nil
}
