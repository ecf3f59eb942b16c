package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carbon-footprint/backend/internal/activity"
)

// recordHandler serves the CRUD and preview routes of one category.
type recordHandler[R activity.Entity] struct {
	svc       *activity.Service[R]
	newRecord func() R
}

// registerRecords mounts /<category>[/:id] under user and /<category>/preview under emissions.
func registerRecords[R activity.Entity](user, emissions *gin.RouterGroup, svc *activity.Service[R], newRecord func() R) {
	h := &recordHandler[R]{svc: svc, newRecord: newRecord}
	path := "/" + string(svc.Category())
	user.GET(path, h.list)
	user.POST(path, h.create)
	user.GET(path+"/:id", h.get)
	user.PUT(path+"/:id", h.update)
	user.DELETE(path+"/:id", h.delete)
	emissions.POST(path+"/preview", h.preview)
}

func (h *recordHandler[R]) list(c *gin.Context) {
	recs, err := h.svc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if recs == nil {
		recs = []R{}
	}
	c.JSON(http.StatusOK, recs)
}

func (h *recordHandler[R]) create(c *gin.Context) {
	rec := h.newRecord()
	if err := c.ShouldBindJSON(rec); err != nil {
		badRequest(c, err)
		return
	}
	rec.GetMeta().UserID = c.Param("userId")
	created, err := h.svc.Create(c.Request.Context(), rec)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *recordHandler[R]) get(c *gin.Context) {
	rec, err := h.svc.GetForUser(c.Request.Context(), c.Param("userId"), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *recordHandler[R]) update(c *gin.Context) {
	rec := h.newRecord()
	if err := c.ShouldBindJSON(rec); err != nil {
		badRequest(c, err)
		return
	}
	meta := rec.GetMeta()
	meta.ID = c.Param("id")
	meta.UserID = c.Param("userId")
	updated, err := h.svc.Update(c.Request.Context(), rec)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *recordHandler[R]) delete(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := h.svc.GetForUser(ctx, c.Param("userId"), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	if err := h.svc.Delete(ctx, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// preview returns the emission a record would be stored with, without persisting it.
func (h *recordHandler[R]) preview(c *gin.Context) {
	rec := h.newRecord()
	if err := c.ShouldBindJSON(rec); err != nil {
		badRequest(c, err)
		return
	}
	kg, err := h.svc.Preview(rec)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": h.svc.Category(), "emission": kg})
}
