package employee

import (
	"fmt"
	"net/http"
	"strconv"

	"employee-api/internal/shared/apperror"
	"employee-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 5
)

type Handler struct {
	service   Service
	validator *Validator
	logger    *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, validator: NewValidator(), logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

// normalizePageSize snaps the requested size onto the supported steps;
// anything else (including zero and negatives) falls back to the default.
func normalizePageSize(size int) int {
	switch size {
	case 5, 10, 15:
		return size
	default:
		return defaultPageSize
	}
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	pageNumber, _ := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	if pageNumber < 1 {
		pageNumber = defaultPageNumber
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "5"))
	pageSize = normalizePageSize(pageSize)

	h.logger.Debug("http list employees",
		zap.Int("page_number", pageNumber),
		zap.Int("page_size", pageSize),
	)

	employees, err := h.service.List(ctx, pageNumber, pageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if len(employees) == 0 {
		response.Error(c, http.StatusNotFound, "No employees found.")
		return
	}

	response.Page(c, gin.H{"employees": employees}, pageNumber, pageSize)
}

func (h *Handler) GetById(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	h.logger.Debug("http get employee by id", zap.String("employee_id", id))

	resp, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, "")
}

func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	h.logger.Debug("http create employee")

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee malformed body", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if violations := h.validator.ValidateCreate(req); violations != nil {
		h.logger.Warn("http create employee validation failed",
			zap.Int("violating_fields", len(violations)),
		)
		response.ValidationError(c, violations)
		return
	}

	resp, err := h.service.Create(ctx, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// CreatedAtAction equivalent: point the client at the GetById route
	c.Header("Location", fmt.Sprintf("/api/employee/%s", resp.EmployeeID))
	response.Success(c, http.StatusCreated, resp, "You have add employee successfully")
}

func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	h.logger.Debug("http update employee", zap.String("employee_id", id))

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee malformed body", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if violations := h.validator.ValidateUpdate(req); violations != nil {
		h.logger.Warn("http update employee validation failed",
			zap.Int("violating_fields", len(violations)),
		)
		response.ValidationError(c, violations)
		return
	}

	resp, err := h.service.Update(ctx, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, "You have edited employee successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	h.logger.Debug("http delete employee", zap.String("employee_id", id))

	if err := h.service.Delete(ctx, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil, "Employee deleted successfully.")
}
