package renderer

// RenderSummary renders the Summary struct to a markdown string.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_categories": "summary_categories.md",
		"summary_progress":   "summary_progress.md",
	}
	if !s.HasTarget {
		partials["summary_progress"] = ""
	}
	return renderTemplate("summary", "summary.md", partials, s)
}
