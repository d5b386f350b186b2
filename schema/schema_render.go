package schema

// DimensionInfo describes one evaluation dimension for display.
type DimensionInfo struct {
	Dimension Dimension `json:"dimension"`
	Purpose   string    `json:"purpose"`
	Signals   []string  `json:"signals"`
}

// DimensionInfoWithData pairs a dimension description with its active weight.
type DimensionInfoWithData struct {
	DimensionInfo
	Weight float64 `json:"weight"`
}

// DimensionRenderModel is the complete render model for dimension definitions.
type DimensionRenderModel struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Dimensions  []DimensionInfoWithData `json:"dimensions"`
	Formula     string                  `json:"formula"`
}
