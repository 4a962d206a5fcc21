package v1

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/config"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/relay"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/service"
)

type Handler struct {
	objectService  service.ObjectService
	scanLogService service.ScanLogService
	sessions       *service.EditSessionManager
	hub            *relay.Hub
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(
	objectService service.ObjectService,
	scanLogService service.ScanLogService,
	sessions *service.EditSessionManager,
	hub *relay.Hub,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		objectService:  objectService,
		scanLogService: scanLogService,
		sessions:       sessions,
		hub:            hub,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// respondServiceError переводит доменные ошибки в HTTP-статусы.
// Текст ошибки дубликата уходит клиенту как есть: значение карты стоит
// после двоеточия, клиент его вытаскивает.
func respondServiceError(c *gin.Context, err error) {
	var dup *service.DuplicateCardNumberError
	switch {
	case errors.As(err, &dup):
		c.JSON(http.StatusBadRequest, gin.H{"error": dup.Error()})
	case errors.Is(err, service.ErrObjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "object not found"})
	case errors.Is(err, service.ErrCheckpointNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "checkpoint not found"})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "edit session not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Create an object with checkpoints
// @Description Create a new object together with its checkpoints. Duplicate card numbers are rejected before anything is created; a failed checkpoint creation rolls the object back. Requires API key.
// @Tags Objects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param object body CreateObjectRequest true "Object creation request"
// @Success 201 {object} ObjectResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or duplicate card number"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /objects [post]
func (h *Handler) createObject(c *gin.Context) {
	var input CreateObjectRequest
	log := h.logger.WithField("method", "createObject")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	object := CreateDTOToObjectModel(input)
	checkpoints := CheckpointDTOsToModels(input.Checkpoints)

	if err := h.objectService.CreateObjectWithCheckpoints(c.Request.Context(), object, checkpoints); err != nil {
		log.WithError(err).Error("Failed to create object in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToObjectResponse(object))
}

// @Summary Get a list of objects
// @Description Get a paginated list of all objects. Requires API key.
// @Tags Objects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} ObjectResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /objects [get]
func (h *Handler) listObjects(c *gin.Context) {
	log := h.logger.WithField("method", "listObjects")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	objects, err := h.objectService.ListObjects(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list objects from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToObjectResponses(objects))
}

// @Summary Get object by ID
// @Description Get a single object with its checkpoints. Requires API key.
// @Tags Objects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Object ID"
// @Success 200 {object} ObjectResponse
// @Failure 400 {object} map[string]string "Invalid object ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Object not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /objects/{id} [get]
func (h *Handler) getObject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid object ID"})
		return
	}
	log := h.logger.WithField("method", "getObject").WithField("id", id)

	object, err := h.objectService.GetObject(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get object from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToObjectResponse(object))
}

// @Summary Update an object with checkpoints
// @Description Update object metadata and upsert its checkpoints. Checkpoints with an id are updated, the rest are created. Per-checkpoint failures do not roll back the object. Requires API key.
// @Tags Objects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Object ID"
// @Param object body UpdateObjectRequest true "Object update request"
// @Success 200 {object} ObjectResponse
// @Failure 400 {object} map[string]string "Invalid object ID, request body or duplicate card number"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Object not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /objects/{id} [patch]
func (h *Handler) updateObject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid object ID"})
		return
	}
	log := h.logger.WithField("method", "updateObject").WithField("id", id)

	var input UpdateObjectRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Тип обьекта не меняется правкой; берем его из текущего состояния,
	// он определяет запасные координаты для точек без размещения
	existing, err := h.objectService.GetObject(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get object for update")
		respondServiceError(c, err)
		return
	}

	object := UpdateDTOToObjectModel(id, existing.Type, input)
	checkpoints := CheckpointDTOsToModels(input.Checkpoints)

	if err := h.objectService.UpdateObjectWithCheckpoints(c.Request.Context(), object, checkpoints); err != nil {
		log.WithError(err).Error("Failed to update object in service")
		respondServiceError(c, err)
		return
	}

	updated, err := h.objectService.GetObject(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to reload object after update")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToObjectResponse(updated))
}

// @Summary Delete an object
// @Description Delete an object. Its checkpoints are removed by cascade. Requires API key.
// @Tags Objects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Object ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid object ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Object not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /objects/{id} [delete]
func (h *Handler) deleteObject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid object ID"})
		return
	}
	log := h.logger.WithField("method", "deleteObject").WithField("id", id)

	if err := h.objectService.DeleteObject(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete object in service")
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get current checkpoint statuses of an object
// @Description Get every checkpoint of the object with its latest scan log and current status (ON_TIME, LATE, MISSED or NO_DATA). Requires API key.
// @Tags Objects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Object ID"
// @Success 200 {array} CheckpointStatusResponse
// @Failure 400 {object} map[string]string "Invalid object ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /objects/{id}/status [get]
func (h *Handler) objectStatuses(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid object ID"})
		return
	}
	log := h.logger.WithField("method", "objectStatuses").WithField("id", id)

	views, err := h.scanLogService.ObjectStatuses(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to get object statuses from service")
		respondServiceError(c, err)
		return
	}

	responses := make([]*CheckpointStatusResponse, len(views))
	for i, view := range views {
		responses[i] = ViewToCheckpointStatusResponse(view)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Upload an object image
// @Description Upload a floor-plan image for an IMAGE object. Requires API key.
// @Tags Objects
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Object ID"
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]string "Image URL"
// @Failure 400 {object} map[string]string "Invalid object ID or missing file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Object not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /objects/{id}/image [post]
func (h *Handler) uploadObjectImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid object ID"})
		return
	}
	log := h.logger.WithField("method", "uploadObjectImage").WithField("id", id)

	file, err := c.FormFile("file")
	if err != nil {
		log.WithError(err).Warn("Missing image file in request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	filename := id.String() + filepath.Ext(file.Filename)
	dst := filepath.Join(h.cfg.UploadsDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.WithError(err).Error("Failed to save uploaded image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	imageURL := "/uploads/" + filename
	if err := h.objectService.AttachImage(c.Request.Context(), id, imageURL); err != nil {
		log.WithError(err).Error("Failed to attach image to object")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}

// @Summary Delete an object image
// @Description Remove the floor-plan image of an object. Requires API key.
// @Tags Objects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Object ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid object ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Object not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /objects/{id}/image [delete]
func (h *Handler) deleteObjectImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid object ID"})
		return
	}
	log := h.logger.WithField("method", "deleteObjectImage").WithField("id", id)

	object, err := h.objectService.GetObject(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get object for image delete")
		respondServiceError(c, err)
		return
	}

	if object.ImageURL != "" {
		path := filepath.Join(h.cfg.UploadsDir, filepath.Base(object.ImageURL))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.WithError(err).Warn("Failed to remove image file from disk")
		}
	}

	if err := h.objectService.RemoveImage(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to remove image from object")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a checkpoint
// @Description Delete a single checkpoint. Requires API key.
// @Tags Checkpoints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Checkpoint ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid checkpoint ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Checkpoint not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /checkpoints/{id} [delete]
func (h *Handler) deleteCheckpoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkpoint ID"})
		return
	}
	log := h.logger.WithField("method", "deleteCheckpoint").WithField("id", id)

	if err := h.objectService.DeleteCheckpoint(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete checkpoint in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List scan logs of a checkpoint
// @Description Get the latest scan logs of a checkpoint, newest first. Requires API key.
// @Tags Checkpoints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Checkpoint ID"
// @Param limit query int false "Maximum number of logs" default(50)
// @Success 200 {array} ScanLogResponse
// @Failure 400 {object} map[string]string "Invalid checkpoint ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /checkpoints/{id}/logs [get]
func (h *Handler) listCheckpointLogs(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkpoint ID"})
		return
	}
	log := h.logger.WithField("method", "listCheckpointLogs").WithField("id", id)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.scanLogService.ListCheckpointLogs(c.Request.Context(), id, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list scan logs from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToScanLogResponses(logs))
}

// @Summary Register a guard scan
// @Description Register a badge scan at a checkpoint identified by its card number. The resulting status is computed against the previous scan of the same checkpoint. Requires API key.
// @Tags Scans
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param scan body ScanRequest true "Scan request"
// @Success 201 {object} ScanLogResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown card number"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /scans [post]
func (h *Handler) registerScan(c *gin.Context) {
	var input ScanRequest
	log := h.logger.WithField("method", "registerScan")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scanLog, err := h.scanLogService.RegisterScan(c.Request.Context(), input.CardNumber, input.Guard)
	if err != nil {
		log.WithError(err).Error("Failed to register scan in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToScanLogResponse(scanLog))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
