package present

import (
	"strconv"
	"strings"

	"github.com/pkordes/guidebook/internal/domain"
)

// Columns is the fixed header of a CSV export.
var Columns = []string{
	"Name", "Address", "Map Reference", "Facebook", "Instagram", "Twitter",
	"Phone", "Email", "Website", "Image Links", "Rating", "Review Count", "Source",
}

// CSVContentType is the MIME type of a CSV export.
const CSVContentType = "text/csv"

// CSV encodes records as one header row plus one row per record.
// Every field is quoted, embedded quotes are doubled, and rows are joined
// with "\n" without a trailing newline. Absent optional fields are empty.
func CSV(records []domain.BusinessRecord) []byte {
	var b strings.Builder
	writeRow(&b, Columns)
	for _, r := range records {
		b.WriteByte('\n')
		writeRow(&b, row(r))
	}
	return []byte(b.String())
}

// Filename is the download name for an export of category.
func Filename(category domain.Category) string {
	if category == "" {
		return "places.csv"
	}
	return string(category) + "_places.csv"
}

func row(r domain.BusinessRecord) []string {
	return []string{
		r.Name,
		r.Address,
		r.MapReference,
		deref(r.Social.Facebook),
		deref(r.Social.Instagram),
		deref(r.Social.Twitter),
		deref(r.Contact.Phone),
		deref(r.Contact.Email),
		deref(r.Contact.Website),
		strings.Join(r.Images, "; "),
		strconv.FormatFloat(r.Rating, 'f', 1, 64),
		strconv.Itoa(r.ReviewCount),
		string(r.Source),
	}
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
