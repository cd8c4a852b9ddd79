package tests

import (
	"net/http"
	"sync"

	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TestController struct {
	Log         *zap.Logger
	TestUsecase TestUsecase
}

var (
	testControllerInstance *TestController
	onceTestController     sync.Once
)

func NewTestController(logger *zap.Logger, testUsecase TestUsecase) *TestController {
	onceTestController.Do(func() {
		testControllerInstance = &TestController{
			Log:         logger,
			TestUsecase: testUsecase,
		}
	})
	return testControllerInstance
}

func (ctrl *TestController) FindAll(w http.ResponseWriter, r *http.Request) {
	tests, err := ctrl.TestUsecase.FindAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchTestsSuccessMessage, tests)
}

func (ctrl *TestController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateTestRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	created, err := ctrl.TestUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTestSuccessMessage, created)
}

func (ctrl *TestController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	testID := chi.URLParam(r, constvars.URLParamTestID)

	request := new(requests.UpdateTestStatusRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	updated, err := ctrl.TestUsecase.UpdateStatus(r.Context(), testID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTestSuccessMessage, updated)
}
