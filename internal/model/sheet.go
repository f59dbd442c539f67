package model

// SheetInfo 工作表信息
type SheetInfo struct {
	Name     string `json:"name"`
	RowCount int    `json:"rowCount"`
	// Score 技能表识别得分 0~1，MissingFields 为未满足的识别条件
	Score         float64  `json:"score"`
	MissingFields []string `json:"missingFields,omitempty"`
}
