package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation/services"
	"hotel-reservation/utils"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

func (rc *ReportController) GetReport(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.service.Generate())
}
