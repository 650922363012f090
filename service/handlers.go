package service

import (
	"encoding/json"
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/graphql-go/graphql"
	"librarygql/cache"
	"librarygql/library"
	"librarygql/models"
	"librarygql/schema"
	"net/http"
	"strings"
	"time"
)

const OPERATIONS_KEY = "graphql_operations"

type Handlers struct {
	Schema   graphql.Schema
	Service  library.Service
	Cache    cache.RequestCacher
	Logger   log.Logger
	GraphiQL bool
}

func (h *Handlers) GraphQL(c *gin.Context) {
	var request schema.Request

	if c.Request.Method == http.MethodGet {
		request.Query = c.Query("query")
		request.OperationName = c.Query("operationName")
		if request.Query == "" && h.GraphiQL && strings.Contains(c.GetHeader("Accept"), "text/html") {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(graphiqlPage))
			return
		}
		if variables := c.Query("variables"); variables != "" {
			if err := json.Unmarshal([]byte(variables), &request.Variables); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
		}
	} else if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if request.Query == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Must provide query string."})
		return
	}

	c.Set(OPERATIONS_KEY, schema.Operations(request.Query))

	result := schema.Execute(c.Request.Context(), h.Schema, request)
	if result.HasErrors() {
		level.Debug(h.Logger).Log("msg", "graphql request failed", "errors", len(result.Errors), "first", result.Errors[0].Message)
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handlers) Store(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())

	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handlers) Activity(c *gin.Context) {
	username := c.Param("username")

	userRequests, err := h.Cache.Read(username)

	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": err.Error(),
		})
		return
	}

	userRequestsRaw := make([]models.UserRequest, 0, len(userRequests))

	for _, request := range userRequests {
		var userRequest models.UserRequest
		if err := json.Unmarshal([]byte(request), &userRequest); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": err.Error(),
			})
			return
		}
		userRequestsRaw = append(userRequestsRaw, userRequest)
	}

	c.JSON(http.StatusOK, userRequestsRaw)
}

// CacheUserRequest records the request in the activity log of the user named
// by the username query parameter. A failure to record never fails the request.
func (h *Handlers) CacheUserRequest(c *gin.Context) {
	username, ok := c.GetQuery("username")

	if !ok || username == "" {
		c.Next()
		return
	}

	c.Next()

	userRequest := models.UserRequest{
		Method:     c.Request.Method,
		Route:      c.Request.URL.Path,
		Operations: c.GetStringSlice(OPERATIONS_KEY),
	}

	request, err := json.Marshal(userRequest)
	if err == nil {
		err = h.Cache.Write(username, request)
	}
	if err != nil {
		level.Warn(h.Logger).Log("msg", "caching user request", "username", username, "err", err)
	}
}

func (h *Handlers) LogRequest(c *gin.Context) {
	begin := time.Now()
	c.Next()

	level.Info(h.Logger).Log(
		"transport", "http",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"took", time.Since(begin),
	)
}
