package cluster

// defaultClusterSpecs is the corrected 2024/2025 placement cycle table: 20
// clusters, four ordered requirements each. Cluster 14 opens with the HAG
// special requirement (best humanities subject at C+ or better).
//
// Rule corrections from the placement authority land here as data; the
// resolver never changes.
var defaultClusterSpecs = []ClusterSpec{
	{
		ID: 1, Description: "Law",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"english", "kiswahili"}, Count: 1},
			{Kind: "specific_or_group", Subjects: []string{"mathematics", "any_group_ii"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_iii"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_ii", "2nd_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 2, Description: "Business and Hospitality Related",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"english", "kiswahili"}, Count: 1},
			{Kind: "specific", Subjects: []string{"mathematics"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_ii", "any_group_iii"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_ii", "any_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 3, Description: "Social Sciences And Arts",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"english", "kiswahili"}, Count: 1},
			{Kind: "specific_or_group", Subjects: []string{"mathematics", "any_group_ii"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_iii"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_ii", "2nd_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 4, Description: "Geosciences",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"mathematics"}, Count: 1},
			{Kind: "specific", Subjects: []string{"physics"}, Count: 1},
			{Kind: "specific", Subjects: []string{"biology", "chemistry", "geography"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_ii", "any_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 5, Description: "Engineering, Technology",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"mathematics"}, Count: 1},
			{Kind: "specific", Subjects: []string{"physics"}, Count: 1},
			{Kind: "specific", Subjects: []string{"chemistry"}, Count: 1},
			{Kind: "specific_or_group", Subjects: []string{"biology", "any_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 6, Description: "Architecture, Building Construction",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"mathematics"}, Count: 1},
			{Kind: "specific", Subjects: []string{"physics"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_iii"}, Count: 1},
			{Kind: "group", Subjects: []string{"2nd_group_ii", "2nd_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 7, Description: "Computing, IT related",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"mathematics"}, Count: 1},
			{Kind: "specific", Subjects: []string{"physics"}, Count: 1},
			{Kind: "group", Subjects: []string{"2nd_group_ii", "any_group_iii"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_ii", "any_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 8, Description: "Agribusiness",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"mathematics"}, Count: 1},
			{Kind: "specific", Subjects: []string{"biology"}, Count: 1},
			{Kind: "specific", Subjects: []string{"physics", "chemistry"}, Count: 1},
			{Kind: "group", Subjects: []string{"3rd_group_ii", "any_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 9, Description: "General Sciences",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"mathematics"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_ii"}, Count: 1},
			{Kind: "group", Subjects: []string{"2nd_group_ii"}, Count: 1},
			{Kind: "group", Subjects: []string{"3rd_group_ii", "any_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 10, Description: "Actuarial Science",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"mathematics"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_ii"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_iii"}, Count: 1},
			{Kind: "group", Subjects: []string{"2nd_group_ii", "2nd_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 11, Description: "Interior Design",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"chemistry"}, Count: 1},
			{Kind: "specific", Subjects: []string{"mathematics", "physics"}, Count: 1},
			{Kind: "specific", Subjects: []string{"biology", "homescience"}, Count: 1},
			{Kind: "specific_or_group", Subjects: []string{"english", "kiswahili", "any_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 12, Description: "Sport Science",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"biology", "general_science"}, Count: 1},
			{Kind: "specific", Subjects: []string{"mathematics"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_ii", "any_group_iii"}, Count: 1},
			{Kind: "specific_or_group", Subjects: []string{"english", "kiswahili", "any_group_ii", "any_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 13, Description: "Medicine",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"biology"}, Count: 1},
			{Kind: "specific", Subjects: []string{"chemistry"}, Count: 1},
			{Kind: "specific", Subjects: []string{"mathematics", "physics"}, Count: 1},
			{Kind: "specific_or_group", Subjects: []string{"english", "kiswahili", "3rd_group_ii", "any_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 14, Description: "History",
		Requirements: []RequirementSpec{
			{Kind: "special", Group: "III", MinGrade: "C+", Count: 1},
			{Kind: "specific", Subjects: []string{"english", "kiswahili"}, Count: 1},
			{Kind: "specific_or_group", Subjects: []string{"mathematics", "any_group_ii"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_ii", "2nd_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 15, Description: "Agriculture",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"biology"}, Count: 1},
			{Kind: "specific", Subjects: []string{"chemistry"}, Count: 1},
			{Kind: "specific", Subjects: []string{"mathematics", "physics", "geography"}, Count: 1},
			{Kind: "specific_or_group", Subjects: []string{"english", "kiswahili", "3rd_group_ii", "any_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 16, Description: "Geography Focus",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"geography"}, Count: 1},
			{Kind: "specific", Subjects: []string{"mathematics"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_ii"}, Count: 1},
			{Kind: "group", Subjects: []string{"2nd_group_ii", "2nd_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 17, Description: "French and German",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"french", "german"}, Count: 1},
			{Kind: "specific", Subjects: []string{"english", "kiswahili"}, Count: 1},
			{Kind: "specific_or_group", Subjects: []string{"mathematics", "any_group_ii", "any_group_iii"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_ii", "any_group_iii", "any_group_iv"}, Count: 1},
		},
	},
	{
		ID: 18, Description: "Music and Arts",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"music"}, Count: 1},
			{Kind: "specific", Subjects: []string{"english", "kiswahili"}, Count: 1},
			{Kind: "specific_or_group", Subjects: []string{"mathematics", "any_group_ii", "any_group_iii"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_ii", "any_group_iii", "any_group_iv", "2nd_group_v"}, Count: 1},
		},
	},
	{
		ID: 19, Description: "Education Related",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"english"}, Count: 1},
			{Kind: "specific_or_group", Subjects: []string{"mathematics", "any_group_ii"}, Count: 1},
			{Kind: "group", Subjects: []string{"2nd_group_ii"}, Count: 1},
			{Kind: "specific_or_group", Subjects: []string{"kiswahili", "3rd_group_ii", "2nd_group_iii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
	{
		ID: 20, Description: "Religious Studies",
		Requirements: []RequirementSpec{
			{Kind: "specific", Subjects: []string{"cre", "ire", "hre"}, Count: 1},
			{Kind: "specific", Subjects: []string{"english", "kiswahili"}, Count: 1},
			{Kind: "group", Subjects: []string{"2nd_group_iii"}, Count: 1},
			{Kind: "group", Subjects: []string{"any_group_ii", "any_group_iv", "any_group_v"}, Count: 1},
		},
	},
}

// DefaultCatalog compiles the built-in cluster table. It panics on a
// malformed table since that is a programming error caught by tests.
func DefaultCatalog() *Catalog {
	cat, err := CompileCatalog(defaultClusterSpecs)
	if err != nil {
		panic("cluster: default catalog invalid: " + err.Error())
	}
	return cat
}
