package immich

// Person is a named person recognized by Immich (a face recognition tag
// that can be attached to assets).
type Person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Asset is a single photo or video record.
type Asset struct {
	ID               string   `json:"id"`
	Type             string   `json:"type"`
	OriginalPath     string   `json:"originalPath"`
	OriginalFileName string   `json:"originalFileName"`
	IsFavorite       bool     `json:"isFavorite"`
	ExifInfo         ExifInfo `json:"exifInfo"`
}

// ExifInfo carries the subset of asset metadata the duplicate scanner needs.
type ExifInfo struct {
	FileSizeInByte int64 `json:"fileSizeInByte"`
}

// DuplicateGroup is one cluster of assets Immich flagged as visual duplicates.
type DuplicateGroup struct {
	DuplicateID string  `json:"duplicateId"`
	Assets      []Asset `json:"assets"`
}

// searchMetadataRequest is the body for POST search/metadata.
type searchMetadataRequest struct {
	Page        int      `json:"page"`
	Size        int      `json:"size"`
	Type        string   `json:"type,omitempty"`
	WithDeleted bool     `json:"withDeleted"`
	WithExif    bool     `json:"withExif,omitempty"`
	PersonIDs   []string `json:"personIds,omitempty"`
}

// searchMetadataResponse is the envelope for POST search/metadata.
// NextPage is null on the last page; JSON null leaves the zero value.
type searchMetadataResponse struct {
	Assets struct {
		Items    []Asset `json:"items"`
		NextPage string  `json:"nextPage"`
		Total    int     `json:"total"`
	} `json:"assets"`
}

// peopleResponse is the envelope for GET people.
type peopleResponse struct {
	People []Person `json:"people"`
	Total  int      `json:"total"`
}

type pingResponse struct {
	Res string `json:"res"`
}

type deleteAssetsRequest struct {
	Force bool     `json:"force"`
	IDs   []string `json:"ids"`
}
