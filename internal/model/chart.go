package model

// ChartUnilevel is a single list of template parameters (spec.md §8.4
// scenario 3: "chart is a Unilevel with cardinality 1").
type ChartUnilevel struct {
	Parameters Sequence[DeclIndex]
}

// ChartMultilevel is a list of ChartUnilevel levels, used for member
// templates nested inside an enclosing template.
type ChartMultilevel struct {
	Levels Sequence[ChartIndex]
}
