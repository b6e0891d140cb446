package syndication

import (
	"strconv"
	"strings"

	"syndication-gateway/internal/domain"
)

// ResolveThumbnail picks the representative thumbnail for one summary image.
// When the image offers sized variants through a URL template, the smallest
// width wins; on equal or absent widths the earlier candidate is kept, and a
// candidate without a width never beats one that has it. If the winner lacks
// either dimension the bare image URL is used instead.
func ResolveThumbnail(img *domain.ContentSummaryImage) *domain.Thumbnail {
	if img == nil {
		return nil
	}
	if img.URLTemplate == "" || len(img.AvailableSizes) == 0 {
		return &domain.Thumbnail{URL: img.URL}
	}

	var best *domain.ImageSize
	for i := range img.AvailableSizes {
		cand := &img.AvailableSizes[i]
		switch {
		case best == nil:
			best = cand
		case cand.Width == 0:
			// keeps the earlier candidate
		case best.Width == 0:
			best = cand
		case cand.Width < best.Width:
			best = cand
		}
	}

	if best.Width == 0 || best.Height == 0 {
		return &domain.Thumbnail{URL: img.URL}
	}

	url := strings.Replace(img.URLTemplate, "{width}", strconv.Itoa(best.Width), 1)
	url = strings.Replace(url, "{height}", strconv.Itoa(best.Height), 1)
	return &domain.Thumbnail{
		Width:  best.Width,
		Height: best.Height,
		URL:    url,
	}
}
