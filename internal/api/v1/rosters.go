package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dhanush8/workers-assignment/internal/metrics"
	"github.com/Dhanush8/workers-assignment/internal/model"
	"github.com/Dhanush8/workers-assignment/internal/service/excel"
)

// RosterSummary 名册概要
type RosterSummary struct {
	ID          string   `json:"id"`
	FileName    string   `json:"fileName"`
	Sheet       string   `json:"sheet"`
	WorkerCount int      `json:"workerCount"`
	TaskCount   int      `json:"taskCount"`
	TaskNames   []string `json:"taskNames"`
	ImportedAt  string   `json:"importedAt"`
}

func summarize(r *model.Roster) RosterSummary {
	return RosterSummary{
		ID:          r.ID,
		FileName:    r.FileName,
		Sheet:       r.Sheet,
		WorkerCount: len(r.WorkerIDs),
		TaskCount:   len(r.TaskNames),
		TaskNames:   r.TaskNames,
		ImportedAt:  r.ImportedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// openUpload 读取 multipart 中的 file 字段并加载为工作簿
func openUpload(c *gin.Context) (*excel.Parser, string, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return nil, "", false
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取上传文件失败"})
		return nil, "", false
	}
	defer f.Close()

	parser := excel.NewParser()
	if err := parser.LoadFile(f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, "", false
	}
	return parser, fh.Filename, true
}

// InspectRoster 预览上传文件的工作表及技能表识别结果，不保存
// POST /api/rosters/inspect (multipart: file)
func (h *Handler) InspectRoster(c *gin.Context) {
	parser, filename, ok := openUpload(c)
	if !ok {
		return
	}
	defer parser.Close()

	sheets, err := parser.GetSheets()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"fileName": filename,
		"sheets":   sheets,
		"detected": excel.NewRecognizer().DetectSkillSheet(parser.Workbook()),
	})
}

// ImportRoster 上传技能表
// POST /api/rosters (multipart: file, sheet)
func (h *Handler) ImportRoster(c *gin.Context) {
	parser, filename, ok := openUpload(c)
	if !ok {
		metrics.RecordRosterImport(false)
		return
	}
	defer parser.Close()

	sheet := c.DefaultPostForm("sheet", h.sheet)
	roster, err := parser.Parse(excel.ParseOptions{Sheet: sheet, FileName: filename})
	if err != nil {
		metrics.RecordRosterImport(false)
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			// 工作表不存在等解析错误
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	h.store.AddRoster(roster)
	metrics.RecordRosterImport(true)
	c.JSON(http.StatusCreated, summarize(roster))
}

// ListRosters 列出名册
// GET /api/rosters
func (h *Handler) ListRosters(c *gin.Context) {
	rosters := h.store.ListRosters()
	items := make([]RosterSummary, 0, len(rosters))
	for _, r := range rosters {
		items = append(items, summarize(r))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// GetRoster 获取名册详情（含矩阵）
// GET /api/rosters/:id
func (h *Handler) GetRoster(c *gin.Context) {
	r, err := h.store.GetRoster(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// DeleteRoster 删除名册
// DELETE /api/rosters/:id
func (h *Handler) DeleteRoster(c *gin.Context) {
	if err := h.store.DeleteRoster(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearRosters 清空全部名册
// DELETE /api/rosters
func (h *Handler) ClearRosters(c *gin.Context) {
	n := h.store.Count()
	h.store.Clear()
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
