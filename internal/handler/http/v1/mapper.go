package v1

import (
	"github.com/google/uuid"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/models"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/service"
)

// CheckpointDTOToModel преобразует DTO контрольной точки в доменную модель
func CheckpointDTOToModel(dto CheckpointRequest) *models.Checkpoint {
	cp := &models.Checkpoint{
		Name:       dto.Name,
		NormalTime: dto.NormalTime,
		PassTime:   dto.PassTime,
		CardNumber: dto.CardNumber,
		Position:   dto.Position,
	}
	if dto.ID != nil {
		cp.ID = *dto.ID
	}
	return cp
}

// CheckpointDTOsToModels преобразует слайс DTO точек в модели
func CheckpointDTOsToModels(dtos []CheckpointRequest) []*models.Checkpoint {
	checkpoints := make([]*models.Checkpoint, len(dtos))
	for i, dto := range dtos {
		checkpoints[i] = CheckpointDTOToModel(dto)
	}
	return checkpoints
}

// CreateDTOToObjectModel преобразует DTO создания в доменную модель обьекта
func CreateDTOToObjectModel(dto CreateObjectRequest) *models.Object {
	return &models.Object{
		Name:           dto.Name,
		Type:           models.ObjectType(dto.Type),
		Zoom:           dto.Zoom,
		MapType:        dto.MapType,
		Position:       dto.Position,
		OrganizationID: dto.OrganizationID,
	}
}

// UpdateDTOToObjectModel преобразует DTO обновления в доменную модель обьекта
func UpdateDTOToObjectModel(id uuid.UUID, objectType models.ObjectType, dto UpdateObjectRequest) *models.Object {
	return &models.Object{
		ID:       id,
		Name:     dto.Name,
		Type:     objectType,
		Zoom:     dto.Zoom,
		MapType:  dto.MapType,
		Position: dto.Position,
	}
}

// ModelToCheckpointResponse преобразует модель точки в DTO для ответа
func ModelToCheckpointResponse(model *models.Checkpoint) *CheckpointResponse {
	return &CheckpointResponse{
		ID:         model.ID,
		ObjectID:   model.ObjectID,
		Name:       model.Name,
		NormalTime: model.NormalTime,
		PassTime:   model.PassTime,
		CardNumber: model.CardNumber,
		Position:   model.Position,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

// ModelsToCheckpointResponses преобразует слайс моделей точек в слайс DTO
func ModelsToCheckpointResponses(checkpoints []*models.Checkpoint) []*CheckpointResponse {
	responses := make([]*CheckpointResponse, len(checkpoints))
	for i, cp := range checkpoints {
		responses[i] = ModelToCheckpointResponse(cp)
	}
	return responses
}

// ModelToObjectResponse преобразует доменную модель обьекта в DTO для ответа
func ModelToObjectResponse(model *models.Object) *ObjectResponse {
	resp := &ObjectResponse{
		ID:             model.ID,
		Name:           model.Name,
		Type:           string(model.Type),
		ImageURL:       model.ImageURL,
		Position:       model.Position,
		Zoom:           model.Zoom,
		MapType:        model.MapType,
		OrganizationID: model.OrganizationID,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
	if model.Checkpoints != nil {
		resp.Checkpoints = ModelsToCheckpointResponses(model.Checkpoints)
	}
	return resp
}

// ModelsToObjectResponses преобразует слайс моделей в слайс DTO
func ModelsToObjectResponses(objects []*models.Object) []*ObjectResponse {
	responses := make([]*ObjectResponse, len(objects))
	for i, model := range objects {
		responses[i] = ModelToObjectResponse(model)
	}
	return responses
}

// ModelToScanLogResponse преобразует модель лога в DTO для ответа
func ModelToScanLogResponse(model *models.ScanLog) *ScanLogResponse {
	return &ScanLogResponse{
		ID:           model.ID,
		CheckpointID: model.CheckpointID,
		Guard:        model.Guard,
		Status:       model.Status,
		CreatedAt:    model.CreatedAt,
	}
}

// ModelsToScanLogResponses преобразует слайс моделей логов в слайс DTO
func ModelsToScanLogResponses(logs []*models.ScanLog) []*ScanLogResponse {
	responses := make([]*ScanLogResponse, len(logs))
	for i, model := range logs {
		responses[i] = ModelToScanLogResponse(model)
	}
	return responses
}

// ViewToCheckpointStatusResponse преобразует снимок статуса точки в DTO
func ViewToCheckpointStatusResponse(view *service.CheckpointStatusView) *CheckpointStatusResponse {
	resp := &CheckpointStatusResponse{
		Checkpoint: ModelToCheckpointResponse(view.Checkpoint),
		Status:     string(view.Status),
	}
	if view.LatestLog != nil {
		resp.LatestLog = ModelToScanLogResponse(view.LatestLog)
	}
	return resp
}

// SnapshotToEditSessionResponse преобразует снимок сессии в DTO
func SnapshotToEditSessionResponse(snapshot *service.EditSessionSnapshot) *EditSessionResponse {
	return &EditSessionResponse{
		ID:                 snapshot.ID,
		Position:           snapshot.Position,
		Checkpoints:        ModelsToCheckpointResponses(snapshot.Checkpoints),
		CanUndoPosition:    snapshot.CanUndoPosition,
		CanRedoPosition:    snapshot.CanRedoPosition,
		CanUndoCheckpoints: snapshot.CanUndoCheckpoints,
		CanRedoCheckpoints: snapshot.CanRedoCheckpoints,
	}
}
