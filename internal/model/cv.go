package model

// CVFormat names a downloadable CV variant.
type CVFormat string

const (
	CVDeveloper CVFormat = "developer"
	CVExecutive CVFormat = "executive"
	CVCreative  CVFormat = "creative"
)

var CVFormats = []CVFormat{CVDeveloper, CVExecutive, CVCreative}

func (f CVFormat) IsValid() bool {
	for _, v := range CVFormats {
		if f == v {
			return true
		}
	}
	return false
}
