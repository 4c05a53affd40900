package gallery

import "strings"

// ParseQuery tokenizes a raw search string into a SearchQuery.
//
// Tokens split on whitespace. A token of the form "namespace:value" becomes
// a directive when the namespace is one of category, language or sort, a
// tag filter otherwise; bare tokens accumulate into free text. A "sort"
// directive accepts an optional order suffix, e.g. "sort:rating:asc".
// Order defaults to descending, matching the backing store.
func ParseQuery(raw string) SearchQuery {
	query := SearchQuery{SortOrder: "desc"}
	var text []string

	for _, token := range strings.Fields(raw) {
		namespace, value, ok := strings.Cut(token, ":")
		if !ok || namespace == "" || value == "" {
			text = append(text, token)
			continue
		}
		switch strings.ToLower(namespace) {
		case "category":
			query.Category = value
		case "language":
			query.Language = value
		case "sort":
			by, order, hasOrder := strings.Cut(value, ":")
			query.SortBy = normalizeSortBy(by)
			if hasOrder && strings.EqualFold(order, "asc") {
				query.SortOrder = "asc"
			}
		default:
			query.Tags = append(query.Tags, TagFilter{
				Namespace: strings.ToLower(namespace),
				Tag:       strings.ToLower(value),
			})
		}
	}

	query.Text = strings.Join(text, " ")
	return query
}

func normalizeSortBy(by string) string {
	switch strings.ToLower(by) {
	case SortByRating, SortByPages, SortByPosted, SortByTitle:
		return strings.ToLower(by)
	default:
		return ""
	}
}

// FTSQuery renders free text as a full-text MATCH expression: each word is
// double-quoted with inner quotes doubled, so reserved operator words and
// punctuation are treated literally.
func FTSQuery(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	quoted := make([]string, len(words))
	for i, word := range words {
		quoted[i] = `"` + strings.ReplaceAll(word, `"`, `""`) + `"`
	}
	return strings.Join(quoted, " ")
}
