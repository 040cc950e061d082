package admin

import (
	"github.com/delipedidos/api/internal/http/handlers/shared"
	"github.com/delipedidos/api/internal/http/response"
	"github.com/delipedidos/api/internal/service"

	"github.com/gin-gonic/gin"
)

// BranchRequest is the create/update payload.
type BranchRequest struct {
	Name        string                 `json:"name"`
	AddressText string                 `json:"address_text"`
	MapQuery    string                 `json:"map_query"`
	Phone       string                 `json:"phone"`
	WhatsApp    string                 `json:"whatsapp"`
	Hours       map[string]interface{} `json:"hours"`
	IsActive    *bool                  `json:"is_active"`
}

func (r BranchRequest) toInput() service.BranchInput {
	return service.BranchInput{
		Name:        r.Name,
		AddressText: r.AddressText,
		MapQuery:    r.MapQuery,
		Phone:       r.Phone,
		WhatsApp:    r.WhatsApp,
		Hours:       r.Hours,
		IsActive:    r.IsActive,
	}
}

// ListBranches returns every branch, inactive ones included.
func (h *Handler) ListBranches(c *gin.Context) {
	branches, err := h.BranchService.List(false)
	if err != nil {
		respondError(c, response.CodeInternal, "branch fetch failed", err)
		return
	}
	response.Success(c, branches)
}

// CreateBranch adds a branch.
func (h *Handler) CreateBranch(c *gin.Context) {
	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	branch, err := h.BranchService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "branch not found")
		return
	}
	response.Success(c, branch)
}

// UpdateBranch replaces a branch's fields.
func (h *Handler) UpdateBranch(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid branch id")
		return
	}
	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	branch, err := h.BranchService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "branch not found")
		return
	}
	response.Success(c, branch)
}

// DeleteBranch removes a branch. Existing orders keep the branch name they
// snapshotted at checkout.
func (h *Handler) DeleteBranch(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid branch id")
		return
	}
	if err := h.BranchService.Delete(id); err != nil {
		respondServiceError(c, err, "branch not found")
		return
	}
	response.SuccessWithMsg(c, "branch deleted", nil)
}
