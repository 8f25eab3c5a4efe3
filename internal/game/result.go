package game

// FailReason identifies why a merge attempt failed.
type FailReason string

// ReasonDifferentCategories is the only failure a well-behaved caller can
// trigger: the two selected squares belong to different categories.
const ReasonDifferentCategories FailReason = "different-categories"

// MergeResult is the structured outcome of a merge attempt.
type MergeResult struct {
	Success bool
	Reason  FailReason // set on failure

	// Merged is the square that replaced the pair on success.
	Merged *GridSquare

	// Solved is the category completed by this merge, when the merged
	// square reached all ten items. Nil otherwise.
	Solved *Category
}

// SelectResult describes the observable effect of a SelectSquare call.
// Exactly one of the fields applies.
type SelectResult struct {
	Ignored    bool // game already won, unknown id, or solved square
	Deselected bool // the square was the active selection and toggled off
	Selected   bool // the square became the active selection
	Merge      *MergeResult // set when this call was the second selection
}
