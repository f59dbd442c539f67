package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dhanush8/workers-assignment/internal/service/assigner"
)

// UpdateConfigRequest 更新策略请求
type UpdateConfigRequest struct {
	DoubleBookOffset *int `json:"doubleBookOffset"`
}

// GetConfig 获取当前兼岗策略
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetPolicy())
}

// UpdateConfig 更新兼岗策略
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if req.DoubleBookOffset == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doubleBookOffset 不能为空"})
		return
	}
	if *req.DoubleBookOffset < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doubleBookOffset 必须 >= 1"})
		return
	}

	policy := assigner.Policy{DoubleBookOffset: *req.DoubleBookOffset}
	h.store.SetPolicy(policy)
	c.JSON(http.StatusOK, policy)
}
