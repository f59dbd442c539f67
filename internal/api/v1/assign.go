package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dhanush8/workers-assignment/internal/logx"
	"github.com/Dhanush8/workers-assignment/internal/model"
	"github.com/Dhanush8/workers-assignment/internal/service/planner"
)

// AssignRequest 分配请求：rosterId 与 matrix 二选一
type AssignRequest struct {
	RosterID    string      `json:"rosterId"`
	Matrix      [][]float64 `json:"matrix"`
	Workers     []string    `json:"workers"`
	Tasks       []string    `json:"tasks"`
	Absent      []string    `json:"absent"`
	AbsentCount *int        `json:"absentCount"`
}

// AssignResponse 分配响应
type AssignResponse struct {
	*model.AssignmentReport
	UnmatchedAbsent []string `json:"unmatchedAbsent,omitempty"`
}

// plan 解析请求并执行分配
func (h *Handler) plan(c *gin.Context) (*planner.Plan, bool) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return nil, false
	}

	var roster *model.Roster
	switch {
	case req.RosterID != "":
		r, err := h.store.GetRoster(req.RosterID)
		if err != nil {
			fail(c, err)
			return nil, false
		}
		roster = r
	case req.Matrix != nil:
		r, err := planner.FromMatrix(req.Matrix, req.Workers, req.Tasks)
		if err != nil {
			fail(c, err)
			return nil, false
		}
		roster = r
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "rosterId 与 matrix 不能同时为空"})
		return nil, false
	}

	p := planner.New(h.store.GetPolicy())
	result, err := p.Plan(planner.Request{
		Roster:      roster,
		Absent:      req.Absent,
		AbsentCount: req.AbsentCount,
	})
	if err != nil {
		fail(c, err)
		return nil, false
	}
	return result, true
}

// Assign 执行任务分配
// POST /api/assign
func (h *Handler) Assign(c *gin.Context) {
	result, ok := h.plan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, AssignResponse{
		AssignmentReport: result.Report,
		UnmatchedAbsent:  result.Unmatched,
	})
}

// ExportAssign 执行任务分配并下载 Excel
// POST /api/assign/export
func (h *Handler) ExportAssign(c *gin.Context) {
	result, ok := h.plan(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.exporter.Write(result.Report, &buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败"})
		return
	}

	filename := fmt.Sprintf("assignments_%s.xlsx", time.Now().Format("20060102_150405"))
	if h.archiveDir != "" {
		path := filepath.Join(h.archiveDir, filename)
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			logx.Log.Warn().Err(err).Str("path", path).Msg("archive export failed")
		}
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
