package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecotrack/ecotrack-api/internal/constants"
	"github.com/ecotrack/ecotrack-api/internal/models"
	"github.com/ecotrack/ecotrack-api/internal/repository"
	"github.com/ecotrack/ecotrack-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// FootprintHandlerTestSuite defines the test suite for FootprintHandler
type FootprintHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *FootprintHandler
	router  *gin.Engine
	userID  uint64
}

// SetupTest runs before each test
func (suite *FootprintHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.FootprintCalculation{},
	)
	suite.Require().NoError(err)

	service := services.NewFootprintService(repository.NewCalculationRepository(suite.db))
	suite.handler = NewFootprintHandler(service)
	suite.userID = 1

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, suite.userID)
	})
	suite.router.POST("/api/carbon-footprint/calculate", suite.handler.Calculate)
	suite.router.GET("/api/carbon-footprint/history", suite.handler.History)
	suite.router.GET("/api/carbon-footprint/latest", suite.handler.Latest)
	suite.router.DELETE("/api/carbon-footprint/calculations/:id", suite.handler.DeleteCalculation)
}

// TearDownTest runs after each test
func (suite *FootprintHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *FootprintHandlerTestSuite) performJSON(method, path string, payload any) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	suite.Require().NoError(err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

type calculationResponse struct {
	Success bool `json:"success"`
	Data    *struct {
		ID        uint64  `json:"id"`
		TotalCO2  float64 `json:"totalCO2"`
		Breakdown struct {
			Transport   float64 `json:"transport"`
			Electricity float64 `json:"electricity"`
			Diet        float64 `json:"diet"`
			Flights     float64 `json:"flights"`
			Waste       float64 `json:"waste"`
		} `json:"breakdown"`
		Inputs struct {
			Transport float64 `json:"transport"`
			Diet      float64 `json:"diet"`
		} `json:"inputs"`
	} `json:"data"`
	Message string `json:"message"`
}

func (suite *FootprintHandlerTestSuite) TestCalculate_ReferenceVector() {
	w := suite.performJSON(http.MethodPost, "/api/carbon-footprint/calculate", map[string]float64{
		"transport":   20,
		"electricity": 200,
		"diet":        2.5,
		"flights":     2,
		"waste":       5,
	})

	suite.Equal(http.StatusCreated, w.Code)

	var response calculationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.True(response.Success)
	suite.Require().NotNil(response.Data)

	suite.InDelta(1.460, response.Data.Breakdown.Transport, 1e-9)
	suite.InDelta(1.680, response.Data.Breakdown.Electricity, 1e-9)
	suite.InDelta(2.500, response.Data.Breakdown.Diet, 1e-9)
	suite.InDelta(0.500, response.Data.Breakdown.Flights, 1e-9)
	suite.InDelta(0.260, response.Data.Breakdown.Waste, 1e-9)
	suite.InDelta(6.400, response.Data.TotalCO2, 1e-9)
	suite.Equal(20.0, response.Data.Inputs.Transport)
	suite.NotZero(response.Data.ID)
}

func (suite *FootprintHandlerTestSuite) TestCalculate_NegativeInputRejected() {
	w := suite.performJSON(http.MethodPost, "/api/carbon-footprint/calculate", map[string]float64{
		"transport": -5,
		"diet":      2.5,
	})

	suite.Equal(http.StatusBadRequest, w.Code)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.FootprintCalculation{}).Count(&count).Error)
	suite.Zero(count, "rejected calculations must not be persisted")
}

func (suite *FootprintHandlerTestSuite) TestLatest_EmptyHistoryReturnsNullData() {
	req := httptest.NewRequest(http.MethodGet, "/api/carbon-footprint/latest", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var response calculationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.True(response.Success)
	suite.Nil(response.Data)
	suite.Equal("No carbon footprint calculations found", response.Message)
}

func (suite *FootprintHandlerTestSuite) TestHistory_PaginatedNewestFirst() {
	for _, diet := range []float64{1, 2, 3} {
		w := suite.performJSON(http.MethodPost, "/api/carbon-footprint/calculate", map[string]float64{"diet": diet})
		suite.Require().Equal(http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/carbon-footprint/history?limit=2&offset=0", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    []struct {
			TotalCO2 float64 `json:"totalCO2"`
		} `json:"data"`
		Pagination struct {
			Total  int64 `json:"total"`
			Limit  int   `json:"limit"`
			Offset int   `json:"offset"`
		} `json:"pagination"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Data, 2)
	suite.EqualValues(3, response.Pagination.Total)
	suite.Equal(3.0, response.Data[0].TotalCO2)
	suite.Equal(2.0, response.Data[1].TotalCO2)
}

func (suite *FootprintHandlerTestSuite) TestDelete_ForeignRowIsNotFound() {
	w := suite.performJSON(http.MethodPost, "/api/carbon-footprint/calculate", map[string]float64{"diet": 2.5})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var response calculationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	calcID := response.Data.ID

	// Another authenticated user sees someone else's row as missing.
	suite.userID = 2
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/carbon-footprint/calculations/%d", calcID), nil)
	w2 := httptest.NewRecorder()
	suite.router.ServeHTTP(w2, req)
	suite.Equal(http.StatusNotFound, w2.Code)

	// The owner can delete it.
	suite.userID = 1
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/carbon-footprint/calculations/%d", calcID), nil)
	w3 := httptest.NewRecorder()
	suite.router.ServeHTTP(w3, req)
	suite.Equal(http.StatusOK, w3.Code)
}

// TestFootprintHandlerTestSuite runs the test suite
func TestFootprintHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FootprintHandlerTestSuite))
}
