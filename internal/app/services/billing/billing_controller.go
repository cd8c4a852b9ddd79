package billing

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

type BillingController struct {
	Log            *zap.Logger
	BillingUsecase BillingUsecase
}

var (
	billingControllerInstance *BillingController
	onceBillingController     sync.Once
)

func NewBillingController(logger *zap.Logger, billingUsecase BillingUsecase) *BillingController {
	onceBillingController.Do(func() {
		billingControllerInstance = &BillingController{
			Log:            logger,
			BillingUsecase: billingUsecase,
		}
	})
	return billingControllerInstance
}

func (ctrl *BillingController) FindAll(w http.ResponseWriter, r *http.Request) {
	records, err := ctrl.BillingUsecase.FindAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchBillingSuccessMessage, records)
}

func (ctrl *BillingController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBillingRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	created, err := ctrl.BillingUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBillingSuccessMessage, created)
}

func (ctrl *BillingController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	billingID := chi.URLParam(r, constvars.URLParamBillingID)

	request := new(requests.UpdateBillingStatusRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	updated, err := ctrl.BillingUsecase.UpdateStatus(r.Context(), billingID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBillingSuccessMessage, updated)
}
