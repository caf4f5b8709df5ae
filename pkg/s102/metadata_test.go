package s102

import (
	"testing"
)

func TestScrapeIssueDate(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want string
		ok   bool
	}{
		{
			name: "typical date stamp",
			xml: "<gmd:MD_Metadata>\n  <gmd:dateStamp>\n    <gco:Date>2026-03-15</gco:Date>\n  </gmd:dateStamp>\n</gmd:MD_Metadata>",
			want: "2026-03-15",
			ok:   true,
		},
		{
			name: "no date stamp element",
			xml:  "<gmd:MD_Metadata></gmd:MD_Metadata>",
			ok:   false,
		},
		{
			name: "date stamp without date",
			xml:  "<gmd:dateStamp><gco:DateTime>2026-03-15T00:00:00</gco:DateTime></gmd:dateStamp>",
			ok:   false,
		},
		{
			name: "empty date element",
			xml:  "<gmd:dateStamp><gco:Date></gco:Date></gmd:dateStamp>",
			ok:   false,
		},
		{
			name: "date on one line",
			xml:  "<gmd:dateStamp><gco:Date>2025-12-01</gco:Date></gmd:dateStamp>",
			want: "2025-12-01",
			ok:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ScrapeIssueDate(tt.xml)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("ScrapeIssueDate = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
