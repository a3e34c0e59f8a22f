package immich

import (
	"context"
	"fmt"
	"net/http"
)

// searchPageSize is the page size for metadata searches. Immich caps a
// single page at 1000 entries.
const searchPageSize = 1000

// SearchAssetsByPerson returns the IDs of all image assets tagged with the
// given person, walking the paged metadata search until a short page.
// Multiple person IDs in one query are ANDed by Immich, so each person has
// to be searched separately.
func (im *Immich) SearchAssetsByPerson(ctx context.Context, personID string) ([]string, error) {
	var ids []string
	for page := 1; ; page++ {
		result, err := doPostJSON[searchMetadataResponse](ctx, im, "search/metadata", searchMetadataRequest{
			Page:        page,
			Size:        searchPageSize,
			Type:        "IMAGE",
			WithDeleted: false,
			PersonIDs:   []string{personID},
		})
		if err != nil {
			return nil, fmt.Errorf("could not search assets for person %s: %w", personID, err)
		}

		for _, asset := range result.Assets.Items {
			ids = append(ids, asset.ID)
		}

		if len(result.Assets.Items) < searchPageSize {
			return ids, nil
		}
	}
}

// GetAllAssets walks the full metadata search and returns every asset
// including exif info. The optional progress callback is invoked after
// each fetched page.
func (im *Immich) GetAllAssets(ctx context.Context, progress func(page int)) ([]Asset, error) {
	var assets []Asset
	for page := 1; ; page++ {
		result, err := doPostJSON[searchMetadataResponse](ctx, im, "search/metadata", searchMetadataRequest{
			Page:     page,
			Size:     searchPageSize,
			WithExif: true,
		})
		if err != nil {
			return nil, fmt.Errorf("could not list assets (page %d): %w", page, err)
		}

		assets = append(assets, result.Assets.Items...)
		if progress != nil {
			progress(page)
		}

		if len(result.Assets.Items) < searchPageSize {
			return assets, nil
		}
	}
}

// DownloadAsset fetches the original file bytes for an asset.
func (im *Immich) DownloadAsset(ctx context.Context, id string) ([]byte, error) {
	body, err := doRequestRaw(ctx, im, http.MethodGet, "assets/"+id+"/original", nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("could not download asset %s: %w", id, err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body for asset %s", ErrUpstream, id)
	}
	return body, nil
}

// DeleteAssets permanently removes the given assets, skipping the trash.
func (im *Immich) DeleteAssets(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	req := deleteAssetsRequest{Force: true, IDs: ids}
	if _, err := doRequestRaw(ctx, im, http.MethodDelete, "assets", req, http.StatusNoContent, http.StatusOK); err != nil {
		return fmt.Errorf("could not delete assets: %w", err)
	}
	return nil
}
