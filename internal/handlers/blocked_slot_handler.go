package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/EstudioRosa/nail-scheduler/internal/domain/booking"
	"github.com/EstudioRosa/nail-scheduler/internal/httperr"
	"github.com/EstudioRosa/nail-scheduler/internal/models"
)

type BlockedSlotHandler struct {
	db *gorm.DB
}

func NewBlockedSlotHandler(db *gorm.DB) *BlockedSlotHandler {
	return &BlockedSlotHandler{db: db}
}

type CreateBlockedSlotRequest struct {
	BlockedDate string `json:"blocked_date" binding:"required"` // YYYY-MM-DD
	BlockedTime string `json:"blocked_time"`                    // HH:mm, vazio para dia inteiro
	FullDay     bool   `json:"full_day"`
	Reason      string `json:"reason"`
}

func (h *BlockedSlotHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if from := c.Query("from"); from != "" {
		q = q.Where("blocked_date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("blocked_date <= ?", to)
	}

	var blocks []models.BlockedSlot
	if err := q.
		Order("blocked_date ASC, blocked_time ASC").
		Find(&blocks).Error; err != nil {

		httperr.Internal(c, "failed_to_list_blocks", "Erro ao listar bloqueios.")
		return
	}

	c.JSON(http.StatusOK, blocks)
}

func (h *BlockedSlotHandler) Create(c *gin.Context) {
	var req CreateBlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, err := time.Parse(domain.DateLayout, req.BlockedDate); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	blockedTime := ""
	if !req.FullDay {
		blockedTime = domain.NormalizeTime(req.BlockedTime)
		if _, err := time.Parse(domain.TimeLayout, blockedTime); err != nil {
			httperr.BadRequest(c, "invalid_time", "Bloqueio parcial exige horário válido.")
			return
		}
	}

	block := models.BlockedSlot{
		BlockedDate: req.BlockedDate,
		BlockedTime: blockedTime,
		FullDay:     req.FullDay,
		Reason:      req.Reason,
	}

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_block", "Erro ao criar bloqueio.")
		return
	}

	c.JSON(http.StatusCreated, block)
}

func (h *BlockedSlotHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.BlockedSlot{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_block", "Erro ao remover bloqueio.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "block_not_found", "Bloqueio não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
