package fetch

import "strings"

// Chapter is one entry of a subject's chapter index.
type Chapter struct {
	Slug  string
	Title string
	Icon  string
}

// ParseChapters extracts the chapter list from a decoded index document.
// The index is a JSON array of {slug, title, icon} objects; entries
// without a slug are dropped, missing titles and icons fall back to
// placeholders.
func ParseChapters(v any) []Chapter {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}

	chapters := make([]Chapter, 0, len(arr))
	for _, entry := range arr {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		slug, _ := obj["slug"].(string)
		slug = strings.ToLower(strings.TrimSpace(slug))
		if slug == "" {
			continue
		}
		title, _ := obj["title"].(string)
		if title == "" {
			title = "Quiz"
		}
		icon, _ := obj["icon"].(string)
		if icon == "" {
			icon = "📘"
		}
		chapters = append(chapters, Chapter{Slug: slug, Title: title, Icon: icon})
	}
	return chapters
}
