package file

import (
	"sort"
	"strings"
)

type SortBy string

const (
	SortByName SortBy = "name"
	SortByDate SortBy = "date"
	SortByType SortBy = "type"
)

// Query filters and orders one owner's collection. The zero value passes
// everything through in insertion order.
type Query struct {
	Folder string
	Search string
	SortBy SortBy
}

// Apply returns a new slice; the input order is preserved for the default
// sort and untouched records are shared, not copied.
func Apply(records Records, q Query) Records {
	out := make(Records, 0, len(records))
	term := strings.ToLower(strings.TrimSpace(q.Search))

	for _, r := range records {
		if q.Folder != "" && q.Folder != "all" && r.Folder != q.Folder {
			continue
		}
		if term != "" && !matches(r, term) {
			continue
		}
		out = append(out, r)
	}

	switch q.SortBy {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortByDate:
		// newest first
		sort.SliceStable(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	case SortByType:
		sort.SliceStable(out, func(i, j int) bool { return out[i].FileType < out[j].FileType })
	}

	return out
}

// matches reports whether the lowercase term occurs in the name, the file
// type, or any tag.
func matches(r *Record, term string) bool {
	if strings.Contains(strings.ToLower(r.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(r.FileType), term) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
