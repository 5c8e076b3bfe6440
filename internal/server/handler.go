package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omarshaarawi/lolclient/internal/api/riot"
	"github.com/omarshaarawi/lolclient/internal/service"
)

const jsonContentType = "application/json; charset=utf-8"

type LookupHandler struct {
	LookupService *service.LookupService
}

func NewLookupHandler(lookupService *service.LookupService) *LookupHandler {
	return &LookupHandler{LookupService: lookupService}
}

type lookupInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Args        []string `json:"args"`
	Usage       string   `json:"usage"`
}

// ListLookups returns every lookup the relay can run.
func (h *LookupHandler) ListLookups(c *gin.Context) {
	lookups := h.LookupService.Lookups()
	out := make([]lookupInfo, 0, len(lookups))
	for _, l := range lookups {
		args := l.Args
		if args == nil {
			args = []string{}
		}
		out = append(out, lookupInfo{
			Name:        l.Name,
			Description: l.Description,
			Args:        args,
			Usage:       l.Usage(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"result": out})
}

// RunLookup relays one API call. Arguments come from repeated ?arg= values,
// in order. The upstream body is written back unchanged.
func (h *LookupHandler) RunLookup(c *gin.Context) {
	raw, err := h.LookupService.Run(c.Request.Context(), c.Param("name"), c.QueryArray("arg"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, jsonContentType, raw)
}

func writeError(c *gin.Context, err error) {
	var (
		apiErr       *riot.APIError
		usageErr     *service.UsageError
		missingErr   *riot.MissingParameterError
		transportErr *riot.TransportError
		decodeErr    *riot.DecodeError
	)
	switch {
	case errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusBadRequest:
		// Redirects and 304s cannot be relayed as they are.
		c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Error()})
	case errors.As(err, &apiErr):
		if json.Valid([]byte(apiErr.Body)) {
			c.Data(apiErr.StatusCode, jsonContentType, []byte(apiErr.Body))
			return
		}
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Error()})
	case errors.As(err, &usageErr), errors.As(err, &missingErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownLookup):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &transportErr), errors.As(err, &decodeErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
