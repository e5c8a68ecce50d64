package catalog

// Category is the perfume concentration shown in the storefront filters.
type Category string

const (
	CategoryExtraitDeParfum Category = "ExtraitDeParfum"
	CategoryParfum          Category = "Parfum"
	CategoryEauDeParfum     Category = "EauDeParfum"
	CategoryEauDeToilette   Category = "EauDeToilette"
	CategoryEauFraiche      Category = "EauFraiche"
	CategoryElixir          Category = "Elixir"
)

func AllCategories() []Category {
	return []Category{
		CategoryExtraitDeParfum,
		CategoryParfum,
		CategoryEauDeParfum,
		CategoryEauDeToilette,
		CategoryEauFraiche,
		CategoryElixir,
	}
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderUnisex Gender = "Unisex"
)

func AllGenders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderUnisex}
}
