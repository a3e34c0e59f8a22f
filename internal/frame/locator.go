package frame

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound means no person matched the requested names, or no asset is
// tagged with any matched person.
var ErrNotFound = errors.New("no matching asset")

// SelectAsset resolves person names to one asset ID chosen uniformly at
// random across all assets tagged with any matched person. A name may match
// any number of people and every match contributes its assets. Immich ANDs
// multiple person filters in a single search, so each person is queried
// separately and the results are merged. The merged set is deduplicated
// before the draw so assets tagged with several requested people are not
// favored.
func (f *Frame) SelectAsset(ctx context.Context, names []string) (string, error) {
	var personIDs []string
	seenPeople := make(map[string]struct{})
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		people, err := f.immich.SearchPeople(ctx, name)
		if err != nil {
			return "", fmt.Errorf("could not search person %q: %w", name, err)
		}

		for _, person := range people {
			if _, ok := seenPeople[person.ID]; ok {
				continue
			}
			seenPeople[person.ID] = struct{}{}
			personIDs = append(personIDs, person.ID)
		}
	}

	if len(personIDs) == 0 {
		return "", fmt.Errorf("%w: no person matched the requested names", ErrNotFound)
	}

	var candidates []string
	seenAssets := make(map[string]struct{})
	for _, personID := range personIDs {
		assetIDs, err := f.immich.SearchAssetsByPerson(ctx, personID)
		if err != nil {
			return "", err
		}

		for _, id := range assetIDs {
			if _, ok := seenAssets[id]; ok {
				continue
			}
			seenAssets[id] = struct{}{}
			candidates = append(candidates, id)
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no asset tagged with the matched people", ErrNotFound)
	}

	return candidates[f.randIntN(len(candidates))], nil
}
