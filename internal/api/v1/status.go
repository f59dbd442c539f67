package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized      bool   `json:"initialized"`      // 是否已有名册
	RosterCount      int    `json:"rosterCount"`      // 名册数量
	DoubleBookOffset int    `json:"doubleBookOffset"` // 兼岗偏移量
	LastImportTime   string `json:"lastImportTime"`   // 最后导入时间
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	rosters := h.store.ListRosters()

	resp := StatusResponse{
		Initialized:      len(rosters) > 0,
		RosterCount:      len(rosters),
		DoubleBookOffset: h.store.GetPolicy().DoubleBookOffset,
	}
	if len(rosters) > 0 {
		resp.LastImportTime = rosters[0].ImportedAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, resp)
}
