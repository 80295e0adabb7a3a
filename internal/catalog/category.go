package catalog

// Category classifies an activity by the kind of friction it carries.
type Category string

const (
	CategoryOrganization   Category = "organization"
	CategoryAdministrative Category = "administrative"
	CategorySocial         Category = "social"
	CategoryDigital        Category = "digital"
	CategoryCreative       Category = "creative"
	CategoryMaintenance    Category = "maintenance"
	CategoryPersonal       Category = "personal"
	CategoryFinancial      Category = "financial"
	CategoryHealth         Category = "health"
	CategoryLearning       Category = "learning"
)

// Categories returns every category in canonical order. The order is part
// of the contract: challenge selection iterates it to stay deterministic.
func Categories() []Category {
	return []Category{
		CategoryOrganization,
		CategoryAdministrative,
		CategorySocial,
		CategoryDigital,
		CategoryCreative,
		CategoryMaintenance,
		CategoryPersonal,
		CategoryFinancial,
		CategoryHealth,
		CategoryLearning,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
