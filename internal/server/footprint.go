package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"carbon-footprint/backend/internal/emission"
	"carbon-footprint/backend/internal/footprint"
	"carbon-footprint/backend/internal/report"
)

type footprintHandler struct {
	footprints *footprint.Service
	reports    *report.Service
}

func (h *footprintHandler) register(user *gin.RouterGroup) {
	user.GET("/footprint", h.aggregate)
	user.GET("/footprint/transport-types", h.transportTypes)
	for _, cat := range emission.Categories() {
		user.GET("/footprint/"+string(cat), h.categoryTotal(cat))
	}
	user.GET("/report", h.report)
}

func (h *footprintHandler) aggregate(c *gin.Context) {
	fp, err := h.footprints.Aggregate(c.Request.Context(), c.Param("userId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, fp)
}

func (h *footprintHandler) transportTypes(c *gin.Context) {
	byType, err := h.footprints.AggregateTransportByVehicleType(c.Request.Context(), c.Param("userId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": c.Param("userId"), "byVehicleType": byType})
}

func (h *footprintHandler) categoryTotal(cat emission.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		total, err := h.footprints.CategoryTotal(c.Request.Context(), c.Param("userId"), cat)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"category": cat, "label": cat.Label(), "total": total})
	}
}

// report serves JSON by default and a plain-text document with ?format=text.
func (h *footprintHandler) report(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "text" {
		badRequest(c, fmt.Errorf("unknown report format %q", format))
		return
	}
	r, err := h.reports.Generate(c.Request.Context(), c.Param("userId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if format == "json" {
		c.JSON(http.StatusOK, r)
		return
	}
	var buf bytes.Buffer
	if err := report.RenderText(&buf, r); err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "footprint-"+r.UserID+".txt"))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}
