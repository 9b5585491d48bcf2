package models

// Branch is a local branch and its tip commit, captured once at startup.
type Branch struct {
	Name   string
	Commit Commit
	IsHead bool // checked out in the working tree
}

// HeadBranch returns the checked-out branch of a snapshot, if any.
func HeadBranch(branches []Branch) (Branch, bool) {
	for _, b := range branches {
		if b.IsHead {
			return b, true
		}
	}
	return Branch{}, false
}
