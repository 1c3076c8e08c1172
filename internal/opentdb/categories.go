package opentdb

import "fmt"

// Category is one question-bank category. The IDs are assigned by the
// upstream service and are stable.
type Category struct {
	ID   int
	Name string
}

// Categories lists the multiple-choice categories the app exposes in the
// setup screen and the categories command.
var Categories = []Category{
	{9, "General Knowledge"},
	{10, "Books"},
	{11, "Film"},
	{12, "Music"},
	{14, "Television"},
	{15, "Video Games"},
	{17, "Science & Nature"},
	{18, "Computers"},
	{19, "Mathematics"},
	{21, "Sports"},
	{22, "Geography"},
	{23, "History"},
	{27, "Animals"},
}

// CategoryName resolves a category ID to its display name. Zero means
// no category filter.
func CategoryName(id int) string {
	if id == 0 {
		return "Any Category"
	}
	for _, c := range Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return fmt.Sprintf("Category %d", id)
}
