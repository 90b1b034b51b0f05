package content

// CategoryCount pairs a filter button with the number of projects it shows.
type CategoryCount struct {
	Category
	Count int
}

// Filter returns the projects tagged with category in their original order.
// "all" (or an empty id) returns the full list; an unknown id matches nothing.
func Filter(projects []Project, category string) []Project {
	if category == "" || category == AllCategories {
		return projects
	}
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.HasCategory(category) {
			out = append(out, p)
		}
	}
	return out
}

// Counts computes the badge count of every filter button.
func Counts(projects []Project) []CategoryCount {
	out := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryCount{Category: c, Count: len(Filter(projects, c.ID))})
	}
	return out
}

// NormalizeCategory maps a requested filter id onto the table, falling back
// to "all" for anything unknown.
func NormalizeCategory(id string) string {
	if isKnown(id) {
		return id
	}
	return AllCategories
}
