package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/config"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/handler/http/v1/mocks"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/models"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/relay"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/service"
	"github.com/FirdavsNurmatov/guard-monitoring/internal/status"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *mocks.MockObjectService, *mocks.MockScanLogService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	objectService := mocks.NewMockObjectService(ctrl)
	scanLogService := mocks.NewMockScanLogService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:    []string{"test-api-key"},
		UploadsDir: t.TempDir(),
	}

	sessions := service.NewEditSessionManager(time.Minute, logger)
	hub := relay.NewHub(logger)
	handler := NewHandler(objectService, scanLogService, sessions, hub, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, objectService, scanLogService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testGeoPosition(lat, lng float64) *models.Position {
	p := models.NewGeoPosition(lat, lng)
	return &p
}

func TestCreateObject_Success(t *testing.T) {
	_, objectService, _, router := newTestHandler(t)
	objectID := uuid.New()

	reqBody := CreateObjectRequest{
		Name: "Склад",
		Type: "MAP",
		Zoom: 14,
		Checkpoints: []CheckpointRequest{
			{Name: "Проходная", NormalTime: 15, PassTime: 5, CardNumber: "A1", Position: testGeoPosition(41.31, 69.25)},
		},
	}

	objectService.EXPECT().
		CreateObjectWithCheckpoints(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, object *models.Object, checkpoints []*models.Checkpoint) error {
			object.ID = objectID
			for _, cp := range checkpoints {
				cp.ID = uuid.New()
				cp.ObjectID = objectID
			}
			object.Checkpoints = checkpoints
			return nil
		}).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/objects", bytes.NewReader(body))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp ObjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, objectID, resp.ID)
	assert.Equal(t, "Склад", resp.Name)
	require.Len(t, resp.Checkpoints, 1)
	assert.Equal(t, "A1", resp.Checkpoints[0].CardNumber)
}

func TestCreateObject_DuplicateCardNumber(t *testing.T) {
	_, objectService, _, router := newTestHandler(t)

	reqBody := CreateObjectRequest{
		Name: "Склад",
		Type: "MAP",
		Checkpoints: []CheckpointRequest{
			{Name: "П-1", NormalTime: 10, PassTime: 5, CardNumber: "A1"},
			{Name: "П-2", NormalTime: 10, PassTime: 5, CardNumber: "A1"},
		},
	}

	objectService.EXPECT().
		CreateObjectWithCheckpoints(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&service.DuplicateCardNumberError{CardNumber: "A1"}).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/objects", bytes.NewReader(body))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// Клиент вытаскивает номер карты из текста после двоеточия
	assert.Equal(t, "duplicate card number:A1", resp["error"])
}

func TestCreateObject_InvalidType(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	body := []byte(`{"name":"Склад","type":"GLOBE","checkpoints":[]}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/objects", bytes.NewReader(body))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateObject_InvalidJSON(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/objects", bytes.NewReader([]byte(`{bad`)))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetObject_Success(t *testing.T) {
	_, objectService, _, router := newTestHandler(t)
	objectID := uuid.New()
	expected := &models.Object{
		ID:   objectID,
		Name: "Склад",
		Type: models.ObjectTypeMap,
	}

	objectService.EXPECT().GetObject(gomock.Any(), objectID).Return(expected, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/objects/"+objectID.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ObjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Склад", resp.Name)
}

func TestGetObject_NotFound(t *testing.T) {
	_, objectService, _, router := newTestHandler(t)
	objectID := uuid.New()

	objectService.EXPECT().
		GetObject(gomock.Any(), objectID).
		Return(nil, fmt.Errorf("service: %w", service.ErrObjectNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/objects/"+objectID.String(), nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetObject_InvalidID(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/objects/not-a-uuid", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListObjects_Success(t *testing.T) {
	_, objectService, _, router := newTestHandler(t)

	objectService.EXPECT().
		ListObjects(gomock.Any(), 2, 5).
		Return([]*models.Object{{ID: uuid.New(), Name: "Склад"}}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/objects?page=2&pageSize=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []ObjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
}

func TestUpdateObject_Success(t *testing.T) {
	_, objectService, _, router := newTestHandler(t)
	objectID := uuid.New()
	existing := &models.Object{ID: objectID, Name: "Склад", Type: models.ObjectTypeMap}

	// Тип обьекта читается из текущего состояния перед правкой
	objectService.EXPECT().GetObject(gomock.Any(), objectID).Return(existing, nil).Times(1)
	objectService.EXPECT().
		UpdateObjectWithCheckpoints(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, object *models.Object, _ []*models.Checkpoint) error {
			assert.Equal(t, objectID, object.ID)
			assert.Equal(t, models.ObjectTypeMap, object.Type)
			assert.Equal(t, "Склад-2", object.Name)
			return nil
		}).
		Times(1)
	objectService.EXPECT().
		GetObject(gomock.Any(), objectID).
		Return(&models.Object{ID: objectID, Name: "Склад-2", Type: models.ObjectTypeMap}, nil).
		Times(1)

	body := []byte(`{"name":"Склад-2","checkpoints":[]}`)
	w := makeRequest(router, http.MethodPatch, "/api/v1/objects/"+objectID.String(), bytes.NewReader(body))

	require.Equal(t, http.StatusOK, w.Code)
	var resp ObjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Склад-2", resp.Name)
}

func TestDeleteObject_Success(t *testing.T) {
	_, objectService, _, router := newTestHandler(t)
	objectID := uuid.New()

	objectService.EXPECT().DeleteObject(gomock.Any(), objectID).Return(nil).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/objects/"+objectID.String(), nil)

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestObjectStatuses_Success(t *testing.T) {
	_, _, scanLogService, router := newTestHandler(t)
	objectID := uuid.New()
	checkpointID := uuid.New()

	views := []*service.CheckpointStatusView{
		{
			Checkpoint: &models.Checkpoint{ID: checkpointID, ObjectID: objectID, Name: "Проходная"},
			LatestLog:  nil,
			Status:     status.StatusNoData,
		},
	}
	scanLogService.EXPECT().ObjectStatuses(gomock.Any(), objectID).Return(views, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/objects/"+objectID.String()+"/status", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []CheckpointStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "NO_DATA", resp[0].Status)
	assert.Nil(t, resp[0].LatestLog)
}

func TestDeleteCheckpoint_NotFound(t *testing.T) {
	_, objectService, _, router := newTestHandler(t)
	checkpointID := uuid.New()

	objectService.EXPECT().
		DeleteCheckpoint(gomock.Any(), checkpointID).
		Return(fmt.Errorf("service: %w", service.ErrCheckpointNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/checkpoints/"+checkpointID.String(), nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterScan_Success(t *testing.T) {
	_, _, scanLogService, router := newTestHandler(t)
	logID := uuid.New()
	checkpointID := uuid.New()

	scanLogService.EXPECT().
		RegisterScan(gomock.Any(), "A1", "Каримов").
		Return(&models.ScanLog{
			ID:           logID,
			CheckpointID: checkpointID,
			Guard:        "Каримов",
			Status:       "ON_TIME",
			CreatedAt:    time.Now(),
		}, nil).
		Times(1)

	body := []byte(`{"cardNumber":"A1","guard":"Каримов"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/scans", bytes.NewReader(body))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp ScanLogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, logID, resp.ID)
	assert.Equal(t, "ON_TIME", resp.Status)
}

func TestRegisterScan_UnknownCard(t *testing.T) {
	_, _, scanLogService, router := newTestHandler(t)

	scanLogService.EXPECT().
		RegisterScan(gomock.Any(), "NOPE", "Каримов").
		Return(nil, fmt.Errorf("service: %w", service.ErrCheckpointNotFound)).
		Times(1)

	body := []byte(`{"cardNumber":"NOPE","guard":"Каримов"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/scans", bytes.NewReader(body))

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterScan_MissingFields(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	body := []byte(`{"cardNumber":"A1"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/scans", bytes.NewReader(body))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCheckpointLogs_Success(t *testing.T) {
	_, _, scanLogService, router := newTestHandler(t)
	checkpointID := uuid.New()

	scanLogService.EXPECT().
		ListCheckpointLogs(gomock.Any(), checkpointID, 10).
		Return([]*models.ScanLog{{ID: uuid.New(), CheckpointID: checkpointID, Status: "LATE"}}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/checkpoints/"+checkpointID.String()+"/logs?limit=10", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []ScanLogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "LATE", resp[0].Status)
}

// Сквозной сценарий сессии редактирования через HTTP: открыть, подвигать
// якорь, отменить, вернуть, закрыть
func TestEditSessionFlow(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	// Открытие с начальной позицией
	openBody := []byte(`{"position":{"lat":41.3,"lng":69.2},"checkpoints":[]}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/edit-sessions", bytes.NewReader(openBody))
	require.Equal(t, http.StatusCreated, w.Code)

	var snap EditSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	sessionURL := "/api/v1/edit-sessions/" + snap.ID.String()
	assert.False(t, snap.CanUndoPosition)

	// Перемещение якоря
	moveBody := []byte(`{"position":{"lat":41.35,"lng":69.25}}`)
	w = makeRequest(router, http.MethodPut, sessionURL+"/position", bytes.NewReader(moveBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.True(t, snap.CanUndoPosition)
	assert.InDelta(t, 41.35, snap.Position.Lat, 0.001)

	// Undo возвращает исходную позицию
	w = makeRequest(router, http.MethodPost, sessionURL+"/position/undo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.InDelta(t, 41.3, snap.Position.Lat, 0.001)
	assert.True(t, snap.CanRedoPosition)

	// Redo возвращает перемещение
	w = makeRequest(router, http.MethodPost, sessionURL+"/position/redo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.InDelta(t, 41.35, snap.Position.Lat, 0.001)

	// Закрытие и повторное чтение
	w = makeRequest(router, http.MethodDelete, sessionURL, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, http.MethodGet, sessionURL, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetSessionPosition_OutOfRange(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/edit-sessions", bytes.NewReader([]byte(`{"checkpoints":[]}`)))
	require.Equal(t, http.StatusCreated, w.Code)
	var snap EditSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))

	body := []byte(`{"position":{"lat":95,"lng":69.2}}`)
	w = makeRequest(router, http.MethodPut, "/api/v1/edit-sessions/"+snap.ID.String()+"/position", bytes.NewReader(body))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	cfg := &config.Config{APIKeys: []string{"valid-key"}}
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := makeRequest(router, http.MethodGet, "/ping", nil, map[string]string{"X-API-Key": "valid-key"})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	cfg := &config.Config{APIKeys: []string{"valid-key"}}
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := makeRequest(router, http.MethodGet, "/ping", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	cfg := &config.Config{APIKeys: []string{"valid-key"}}
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := makeRequest(router, http.MethodGet, "/ping", nil, map[string]string{"X-API-Key": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIKeyAuthMiddleware_QueryParamForWebsocket(t *testing.T) {
	cfg := &config.Config{APIKeys: []string{"valid-key"}}
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/ws", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Браузерный WebSocket не умеет свои заголовки
	w := makeRequest(router, http.MethodGet, "/ws?api_key=valid-key", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
