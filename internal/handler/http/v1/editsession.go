package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/service"
)

// @Summary Open an edit session
// @Description Open an in-memory edit session seeded with the current object position and checkpoints. The session keeps separate undo/redo histories for the position and for the checkpoint set. Requires API key.
// @Tags EditSessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param session body OpenEditSessionRequest true "Initial session state"
// @Success 201 {object} EditSessionResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /edit-sessions [post]
func (h *Handler) openEditSession(c *gin.Context) {
	var input OpenEditSessionRequest
	log := h.logger.WithField("method", "openEditSession")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snapshot := h.sessions.Open(input.Position, CheckpointDTOsToModels(input.Checkpoints))
	c.JSON(http.StatusCreated, SnapshotToEditSessionResponse(snapshot))
}

// @Summary Get an edit session
// @Description Get the current snapshot of an edit session. Requires API key.
// @Tags EditSessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} EditSessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /edit-sessions/{id} [get]
func (h *Handler) getEditSession(c *gin.Context) {
	h.sessionOp(c, func(id uuid.UUID) (*service.EditSessionSnapshot, error) {
		return h.sessions.Get(id)
	})
}

// @Summary Set the object position in a session
// @Description Record a new object anchor position as a separate undo step. Requires API key.
// @Tags EditSessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param position body SetPositionRequest true "New position"
// @Success 200 {object} EditSessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /edit-sessions/{id}/position [put]
func (h *Handler) setSessionPosition(c *gin.Context) {
	var input SetPositionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Position.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.sessionOp(c, func(id uuid.UUID) (*service.EditSessionSnapshot, error) {
		return h.sessions.SetPosition(id, input.Position)
	})
}

// @Summary Set the checkpoint list in a session
// @Description Record a new checkpoint set as a separate undo step. Requires API key.
// @Tags EditSessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param checkpoints body SetCheckpointsRequest true "New checkpoint set"
// @Success 200 {object} EditSessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /edit-sessions/{id}/checkpoints [put]
func (h *Handler) setSessionCheckpoints(c *gin.Context) {
	var input SetCheckpointsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.sessionOp(c, func(id uuid.UUID) (*service.EditSessionSnapshot, error) {
		return h.sessions.SetCheckpoints(id, CheckpointDTOsToModels(input.Checkpoints))
	})
}

// @Summary Undo the last position change
// @Tags EditSessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} EditSessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /edit-sessions/{id}/position/undo [post]
func (h *Handler) undoSessionPosition(c *gin.Context) {
	h.sessionOp(c, h.sessions.UndoPosition)
}

// @Summary Redo the last undone position change
// @Tags EditSessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} EditSessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /edit-sessions/{id}/position/redo [post]
func (h *Handler) redoSessionPosition(c *gin.Context) {
	h.sessionOp(c, h.sessions.RedoPosition)
}

// @Summary Undo the last checkpoint set change
// @Tags EditSessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} EditSessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /edit-sessions/{id}/checkpoints/undo [post]
func (h *Handler) undoSessionCheckpoints(c *gin.Context) {
	h.sessionOp(c, h.sessions.UndoCheckpoints)
}

// @Summary Redo the last undone checkpoint set change
// @Tags EditSessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} EditSessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /edit-sessions/{id}/checkpoints/redo [post]
func (h *Handler) redoSessionCheckpoints(c *gin.Context) {
	h.sessionOp(c, h.sessions.RedoCheckpoints)
}

// @Summary Close an edit session
// @Description Close a session and discard its undo history. Requires API key.
// @Tags EditSessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /edit-sessions/{id} [delete]
func (h *Handler) closeEditSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	if err := h.sessions.Close(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// sessionOp общая обвязка для операций над сессией по id из пути
func (h *Handler) sessionOp(c *gin.Context, op func(id uuid.UUID) (*service.EditSessionSnapshot, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	snapshot, err := op(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SnapshotToEditSessionResponse(snapshot))
}
