package domain

// Category describes what kind of work a focus session is for.
// It is presentational and steers advisory prompts; it never affects
// countdown behavior.
type Category string

const (
	CategoryFocus    Category = "focus"
	CategoryCreative Category = "creative"
	CategoryChore    Category = "chore"
	CategoryLearning Category = "learning"
	CategoryRest     Category = "rest"
)

// ValidCategories is the canonical closed set of accepted category strings.
var ValidCategories = map[Category]bool{
	CategoryFocus:    true,
	CategoryCreative: true,
	CategoryChore:    true,
	CategoryLearning: true,
	CategoryRest:     true,
}

// AllCategories lists the categories in display order.
var AllCategories = []Category{
	CategoryFocus,
	CategoryCreative,
	CategoryChore,
	CategoryLearning,
	CategoryRest,
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, ValidCategories[c]
}
