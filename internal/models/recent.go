package models

import "os"

// MaxRecentFiles caps the recent-files list.
const MaxRecentFiles = 15

// RecentFiles is an ordered list of file paths, most recent first, with
// no duplicates.
type RecentFiles []string

// Add moves path to the front, removing any earlier occurrence, and
// truncates the list to MaxRecentFiles. Empty paths are ignored.
func (r *RecentFiles) Add(path string) {
	if path == "" {
		return
	}

	out := make(RecentFiles, 0, len(*r)+1)
	out = append(out, path)
	for _, p := range *r {
		if p != path {
			out = append(out, p)
		}
	}
	*r = out
	r.Truncate()
}

func (r *RecentFiles) Remove(path string) {
	out := (*r)[:0]
	for _, p := range *r {
		if p != path {
			out = append(out, p)
		}
	}
	*r = out
}

func (r *RecentFiles) Clear() {
	*r = RecentFiles{}
}

// Dedup removes repeated paths, keeping the first occurrence.
func (r *RecentFiles) Dedup() {
	seen := make(map[string]struct{}, len(*r))
	out := (*r)[:0]
	for _, p := range *r {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	*r = out
}

func (r *RecentFiles) Truncate() {
	if len(*r) > MaxRecentFiles {
		*r = (*r)[:MaxRecentFiles]
	}
}

// Prune drops entries whose file no longer exists on disk and reports
// whether anything was removed.
func (r *RecentFiles) Prune() bool {
	out := (*r)[:0]
	for _, p := range *r {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	changed := len(out) != len(*r)
	*r = out
	return changed
}
