package domain

// RecipeChangeStatus classifies how a branch package relates to the master manifest.
type RecipeChangeStatus string

const (
	// RecipeAdded means the package is new on the branch.
	RecipeAdded RecipeChangeStatus = "added"
	// RecipeUnchanged means the recipe fingerprint is the same on both sides.
	RecipeUnchanged RecipeChangeStatus = "unchanged"
	// RecipeBumped means the recipe changed and the version changed with it.
	RecipeBumped RecipeChangeStatus = "bumped"
	// RecipeChangedWithoutBump means the recipe changed but the version did not.
	RecipeChangedWithoutBump RecipeChangeStatus = "changed-without-bump"
)

// RecipeChange is the classification of one branch package against master.
// Master is the zero value when Status is RecipeAdded.
type RecipeChange struct {
	Status RecipeChangeStatus
	Master PackageRecord
	Branch PackageRecord
}
