package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/rentora/internal/currency"
)

func (s *Server) ListCountries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": currency.Countries()})
}
