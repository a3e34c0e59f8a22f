// Package dedupe implements duplicate cleanup for an Immich library fed
// from an external photo share. Photos often exist twice: once imported
// from the share and once uploaded by a phone. The share copy is the one
// to keep.
package dedupe

import (
	"cmp"
	"slices"
	"strings"

	"github.com/kozaktomas/immich-frame/internal/constants"
	"github.com/kozaktomas/immich-frame/internal/immich"
)

// Scanner decides which duplicate copies are safe to delete. The path
// roots identify where a copy came from and are settable for tests.
type Scanner struct {
	ExternalLibraryRoot string
	PhoneUploadRoot     string
}

// NewScanner creates a Scanner with the deployment's default path roots.
func NewScanner() *Scanner {
	return &Scanner{
		ExternalLibraryRoot: constants.ExternalLibraryRoot,
		PhoneUploadRoot:     constants.PhoneUploadRoot,
	}
}

// inExternalLibrary reports whether the asset was imported from the share.
func (s *Scanner) inExternalLibrary(a immich.Asset) bool {
	return strings.HasPrefix(a.OriginalPath, s.ExternalLibraryRoot)
}

// isPhoneUpload reports whether the asset was uploaded through the app.
func (s *Scanner) isPhoneUpload(a immich.Asset) bool {
	return strings.HasPrefix(a.OriginalPath, s.PhoneUploadRoot)
}

// betterThan reports whether a is a strictly better copy to keep than b:
// external library copies beat everything else, and between two library
// copies the favorite wins.
func (s *Scanner) betterThan(a, b immich.Asset) bool {
	aExt, bExt := s.inExternalLibrary(a), s.inExternalLibrary(b)
	switch {
	case aExt && !bExt:
		return true
	case !aExt && bExt:
		return false
	case aExt && bExt:
		return a.IsFavorite && !b.IsFavorite
	default:
		return false
	}
}

// PhoneUploadDuplicates returns the IDs of phone upload copies inside
// duplicate groups that also contain an external library copy. Groups
// without a library copy are left alone; there is nothing safe to keep.
func (s *Scanner) PhoneUploadDuplicates(groups []immich.DuplicateGroup) []string {
	var ids []string
	for _, group := range groups {
		hasLibraryCopy := false
		var phoneUploads []string
		for _, asset := range group.Assets {
			switch {
			case s.inExternalLibrary(asset):
				hasLibraryCopy = true
			case s.isPhoneUpload(asset):
				phoneUploads = append(phoneUploads, asset.ID)
			}
		}
		if hasLibraryCopy {
			ids = append(ids, phoneUploads...)
		}
	}
	return ids
}

// ManualCandidates groups assets by exact file size, then by original file
// name, and returns every group with more than one member. These are
// duplicates the similarity detection missed. Each group is ordered worst
// first so callers keep the last entry; groups are sorted by file size and
// name for stable output.
func (s *Scanner) ManualCandidates(assets []immich.Asset) [][]immich.Asset {
	bySize := make(map[int64][]immich.Asset)
	for _, a := range assets {
		bySize[a.ExifInfo.FileSizeInByte] = append(bySize[a.ExifInfo.FileSizeInByte], a)
	}

	var result [][]immich.Asset
	for _, sizeGroup := range bySize {
		if len(sizeGroup) < 2 {
			continue
		}

		byName := make(map[string][]immich.Asset)
		for _, a := range sizeGroup {
			byName[a.OriginalFileName] = append(byName[a.OriginalFileName], a)
		}

		for _, nameGroup := range byName {
			if len(nameGroup) < 2 {
				continue
			}
			s.sortWorstFirst(nameGroup)
			result = append(result, nameGroup)
		}
	}

	slices.SortFunc(result, func(a, b []immich.Asset) int {
		if c := cmp.Compare(a[0].ExifInfo.FileSizeInByte, b[0].ExifInfo.FileSizeInByte); c != 0 {
			return c
		}
		return cmp.Compare(a[0].OriginalFileName, b[0].OriginalFileName)
	})

	return result
}

// sortWorstFirst orders a group so the copy to keep ends up last. Ties
// keep their original order.
func (s *Scanner) sortWorstFirst(group []immich.Asset) {
	slices.SortStableFunc(group, func(a, b immich.Asset) int {
		switch {
		case s.betterThan(b, a):
			return -1
		case s.betterThan(a, b):
			return 1
		default:
			return 0
		}
	})
}

// Deletable returns every asset in a worst-first group except the kept
// last one.
func Deletable(group []immich.Asset) []immich.Asset {
	if len(group) == 0 {
		return nil
	}
	return group[:len(group)-1]
}
