package tracking

import (
	"slices"

	"folio/internal/model"
)

// FormatShare is one line of the download report.
type FormatShare struct {
	Format     model.CVFormat `json:"format"`
	Downloads  int64          `json:"downloads"`
	Percentage float64        `json:"percentage"`
}

type DownloadReport struct {
	Total   int64         `json:"total"`
	Formats []FormatShare `json:"formats"`
}

// Report orders formats by downloads, most popular first. Equal counts
// keep the order of model.CVFormats.
func Report(counts map[model.CVFormat]int64) DownloadReport {
	var total int64
	for _, f := range model.CVFormats {
		total += counts[f]
	}

	shares := make([]FormatShare, 0, len(model.CVFormats))
	for _, f := range model.CVFormats {
		share := FormatShare{Format: f, Downloads: counts[f]}
		if total > 0 {
			share.Percentage = float64(share.Downloads) / float64(total) * 100
		}
		shares = append(shares, share)
	}
	slices.SortStableFunc(shares, func(a, b FormatShare) int {
		switch {
		case a.Downloads > b.Downloads:
			return -1
		case a.Downloads < b.Downloads:
			return 1
		}
		return 0
	})
	return DownloadReport{Total: total, Formats: shares}
}
