package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"nafis/models"
	"nafis/services/catalog"
	"nafis/utils"

	"github.com/gin-gonic/gin"
)

// ListServicesHandler returns the filtered, paginated treatment catalog.
func ListServicesHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.ServiceFilter{
			Category: c.Query("category"),
			Popular:  c.Query("popular") == "true",
			Featured: c.Query("featured") == "true",
		}
		if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
			filter.Page = page
		}
		if limit, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil {
			filter.Limit = limit
		}

		page, err := svc.ListServices(c.Request.Context(), filter)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to list services", err.Error())
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetServiceHandler returns one catalog entry.
func GetServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry, err := svc.GetService(c.Request.Context(), c.Param("id"))
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found", c.Param("id"))
			return
		}
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch service", err.Error())
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}
