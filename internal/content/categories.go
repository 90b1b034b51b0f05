package content

// AllCategories is the pseudo-category that matches every project.
const AllCategories = "all"

// Category is one entry of the closed tag enumeration. The same table drives
// the filter buttons, the badge colors and validation so they cannot drift.
type Category struct {
	ID    string
	Label string
	Icon  string
	Badge string
}

var categories = []Category{
	{ID: AllCategories, Label: "All", Icon: "layout-grid"},
	{ID: "ai", Label: "AI", Icon: "cpu", Badge: "badge-ai"},
	{ID: "robotics", Label: "Robotics", Icon: "bot", Badge: "badge-robotics"},
	{ID: "iot", Label: "IoT", Icon: "wifi", Badge: "badge-iot"},
	{ID: "web", Label: "Web", Icon: "globe", Badge: "badge-web"},
	{ID: "systems", Label: "Systems", Icon: "terminal", Badge: "badge-systems"},
	{ID: "xr", Label: "XR", Icon: "glasses", Badge: "badge-xr"},
	{ID: "games", Label: "Games", Icon: "gamepad", Badge: "badge-games"},
}

// Categories returns the filter table in display order, "all" first.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory finds a tag in the table. Tags outside it get an unstyled
// badge downstream.
func LookupCategory(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// IsCategory reports whether id is a real project tag. "all" is not.
func IsCategory(id string) bool {
	return id != AllCategories && isKnown(id)
}

func isKnown(id string) bool {
	_, ok := LookupCategory(id)
	return ok
}

// BadgeClass is the CSS class for a project tag, empty when unknown.
func BadgeClass(id string) string {
	c, _ := LookupCategory(id)
	return c.Badge
}

var activityIcons = map[string]bool{
	"music":    true,
	"camera":   true,
	"activity": true,
	"video":    true,
}

const defaultActivityIcon = "activity"

// ActivityIcon resolves an extracurricular icon tag, falling back to "activity".
func ActivityIcon(tag string) string {
	if activityIcons[tag] {
		return tag
	}
	return defaultActivityIcon
}
