package assigner

import (
	"fmt"
	"math"

	"github.com/Dhanush8/workers-assignment/internal/model"
)

// MaxScore 单个技能分上限，保证总分累加不会溢出
const MaxScore = 1e12

// Validate 校验技能矩阵：各行等长，元素为 [0, MaxScore] 内的有限数
func Validate(matrix model.SkillMatrix) error {
	if len(matrix) == 0 {
		return nil
	}
	width := len(matrix[0])
	for i, row := range matrix {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidSkillMatrix, i, len(row), width)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-numeric score at (%d,%d)", ErrInvalidSkillMatrix, i, j)
			}
			if v < 0 {
				return fmt.Errorf("%w: negative score %v at (%d,%d)", ErrInvalidSkillMatrix, v, i, j)
			}
			if v > MaxScore {
				return fmt.Errorf("%w: score %v at (%d,%d) exceeds %v", ErrInvalidSkillMatrix, v, i, j, MaxScore)
			}
		}
	}
	return nil
}
