package s102

import (
	"strings"
)

// ScrapeIssueDate extracts the dataset issue date from embedded descriptive
// metadata XML (ISO 19115 as carried by BAG files): the text of the first
// gco:Date element inside the gmd:dateStamp element. The search is a fixed
// tag scan, not a full XML parse, matching the narrow structure the source
// rasters embed.
func ScrapeIssueDate(xml string) (string, bool) {
	i := strings.Index(xml, "<gmd:dateStamp>")
	if i < 0 {
		return "", false
	}
	rest := xml[i:]
	j := strings.Index(rest, "<gco:Date>")
	if j < 0 {
		return "", false
	}
	rest = rest[j+len("<gco:Date>"):]
	k := strings.IndexByte(rest, '<')
	if k < 0 {
		return "", false
	}
	date := strings.TrimSpace(rest[:k])
	if date == "" {
		return "", false
	}
	return date, true
}
