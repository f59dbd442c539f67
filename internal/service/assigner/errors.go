package assigner

import "errors"

var (
	// ErrInvalidSkillMatrix 技能矩阵不规整或含负数/NaN/Inf
	ErrInvalidSkillMatrix = errors.New("invalid skill matrix")
	// ErrInvalidAbsentCount 缺勤人数为负
	ErrInvalidAbsentCount = errors.New("invalid absent count")
)
