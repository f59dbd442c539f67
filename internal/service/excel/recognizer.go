package excel

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Dhanush8/workers-assignment/internal/model"
)

// MinSkillSheetScore 低于该得分的工作表不视为技能表
const MinSkillSheetScore = 0.5

// 识别时最多抽查的数据行数
const sampleRows = 20

type sheetRequirement struct {
	Key   string
	Match func(rows [][]string) bool
}

// Recognizer 技能表识别器：按表头与数据特征为每个工作表打分
type Recognizer struct {
	requirements []sheetRequirement
	workerHeader map[string]struct{}
	whitespaceRe *regexp.Regexp
}

// NewRecognizer 创建识别器
func NewRecognizer() *Recognizer {
	r := &Recognizer{
		workerHeader: map[string]struct{}{
			"worker id": {}, "worker": {}, "employee id": {}, "employee": {},
			"id": {}, "员工编号": {}, "员工": {}, "工号": {}, "编号": {},
		},
		whitespaceRe: regexp.MustCompile(`\s+`),
	}
	r.requirements = []sheetRequirement{
		{Key: "worker id header", Match: r.hasWorkerHeader},
		{Key: "task columns", Match: hasTaskColumns},
		{Key: "numeric scores", Match: hasNumericScores},
	}
	return r
}

// RecognizeWorkbook 按工作表顺序返回每个工作表的识别结果
func (r *Recognizer) RecognizeWorkbook(wb *excelize.File) []model.SheetInfo {
	if wb == nil {
		return []model.SheetInfo{}
	}

	sheets := wb.GetSheetList()
	out := make([]model.SheetInfo, 0, len(sheets))
	for _, name := range sheets {
		rows, err := wb.GetRows(name)
		if err != nil {
			continue
		}
		score, missing := r.score(name, rows)
		out = append(out, model.SheetInfo{
			Name:          name,
			RowCount:      len(rows),
			Score:         score,
			MissingFields: missing,
		})
	}
	return out
}

// DetectSkillSheet 返回得分最高的技能表名；没有达标的工作表时返回空串
func (r *Recognizer) DetectSkillSheet(wb *excelize.File) string {
	best, bestScore := "", 0.0
	for _, info := range r.RecognizeWorkbook(wb) {
		if info.Score > bestScore {
			best, bestScore = info.Name, info.Score
		}
	}
	if bestScore < MinSkillSheetScore {
		return ""
	}
	return best
}

func (r *Recognizer) score(sheetName string, rows [][]string) (float64, []string) {
	if len(rows) == 0 {
		missing := make([]string, 0, len(r.requirements))
		for _, req := range r.requirements {
			missing = append(missing, req.Key)
		}
		return 0, missing
	}

	hit := 0
	missing := make([]string, 0, len(r.requirements))
	for _, req := range r.requirements {
		if req.Match(rows) {
			hit++
		} else {
			missing = append(missing, req.Key)
		}
	}

	score := float64(hit) / float64(len(r.requirements))
	score += nameBoost(sheetName)
	if score > 1.0 {
		score = 1.0
	}
	return score, missing
}

func (r *Recognizer) normalizeHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "（", "(")
	if i := strings.Index(s, "("); i > 0 {
		s = s[:i]
	}
	s = r.whitespaceRe.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

func (r *Recognizer) hasWorkerHeader(rows [][]string) bool {
	if len(rows[0]) == 0 {
		return false
	}
	_, ok := r.workerHeader[r.normalizeHeader(rows[0][0])]
	return ok
}

func hasTaskColumns(rows [][]string) bool {
	for _, h := range rows[0][min(1, len(rows[0])):] {
		if strings.TrimSpace(h) != "" {
			return true
		}
	}
	return false
}

// hasNumericScores 抽查数据行 B 列起的非空单元格，过半为非负数即满足
func hasNumericScores(rows [][]string) bool {
	numeric, total := 0, 0
	for i, row := range rows[1:] {
		if i >= sampleRows {
			break
		}
		for _, v := range row[min(1, len(row)):] {
			v = strings.ReplaceAll(strings.TrimSpace(v), ",", "")
			if v == "" {
				continue
			}
			total++
			if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
				numeric++
			}
		}
	}
	return total > 0 && numeric*2 > total
}

func nameBoost(sheetName string) float64 {
	name := strings.ToLower(sheetName)
	for _, kw := range []string{"skill", "技能", "roster", "名册"} {
		if strings.Contains(name, kw) {
			return 0.2
		}
	}
	return 0
}
