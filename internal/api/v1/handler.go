package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dhanush8/workers-assignment/internal/service/assigner"
	"github.com/Dhanush8/workers-assignment/internal/service/excel"
	"github.com/Dhanush8/workers-assignment/internal/service/planner"
	"github.com/Dhanush8/workers-assignment/internal/service/store"
)

// Handler V1 API 处理器
type Handler struct {
	store    *store.MemoryStore
	exporter *excel.Exporter
	sheet    string
	// archiveDir 非空时导出结果同时保存一份到该目录
	archiveDir string
}

// NewHandler 创建 V1 API 处理器；sheet 为默认读取的工作表名（可为空）
func NewHandler(store *store.MemoryStore, sheet string) *Handler {
	return &Handler{
		store:    store,
		exporter: excel.NewExporter(),
		sheet:    sheet,
	}
}

// SetArchiveDir 设置导出结果归档目录
func (h *Handler) SetArchiveDir(dir string) {
	h.archiveDir = dir
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 策略配置
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	// 技能表名册
	router.POST("/rosters", h.ImportRoster)
	router.POST("/rosters/inspect", h.InspectRoster)
	router.GET("/rosters", h.ListRosters)
	router.DELETE("/rosters", h.ClearRosters)
	router.GET("/rosters/:id", h.GetRoster)
	router.DELETE("/rosters/:id", h.DeleteRoster)

	// 任务分配
	router.POST("/assign", h.Assign)
	router.POST("/assign/export", h.ExportAssign)
}

// statusFor 将领域错误映射为 HTTP 状态码
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrRosterNotFound):
		return http.StatusNotFound
	case errors.Is(err, assigner.ErrInvalidSkillMatrix),
		errors.Is(err, assigner.ErrInvalidAbsentCount),
		errors.Is(err, planner.ErrLabelMismatch),
		errors.Is(err, excel.ErrInvalidCell),
		errors.Is(err, excel.ErrEmptySheet),
		errors.Is(err, excel.ErrNoTasks),
		errors.Is(err, excel.ErrDuplicateWorker):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
