package immich

import (
	"context"
	"net/url"
)

// SearchPeople finds people whose name matches the given query. Immich does
// the matching server side; zero results is not an error.
func (im *Immich) SearchPeople(ctx context.Context, name string) ([]Person, error) {
	result, err := doGetJSON[[]Person](ctx, im, "search/person?name="+url.QueryEscape(name))
	if err != nil {
		return nil, err
	}
	return *result, nil
}

// GetAllPeople retrieves every visible person that has a name assigned.
// Unnamed face clusters are skipped.
func (im *Immich) GetAllPeople(ctx context.Context) ([]Person, error) {
	result, err := doGetJSON[peopleResponse](ctx, im, "people?withHidden=false")
	if err != nil {
		return nil, err
	}

	people := make([]Person, 0, len(result.People))
	for _, p := range result.People {
		if p.Name != "" {
			people = append(people, p)
		}
	}
	return people, nil
}
