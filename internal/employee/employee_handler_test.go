package employee_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"employee-api/internal/employee"
	employeeerrors "employee-api/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeEmployeeService struct {
	ListFn    func(ctx context.Context, pageNumber, pageSize int) ([]employee.EmployeeResponse, error)
	GetByIDFn func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	UpdateFn  func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) List(ctx context.Context, pageNumber, pageSize int) ([]employee.EmployeeResponse, error) {
	return f.ListFn(ctx, pageNumber, pageSize)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("success echoes paging parameters", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, pageNumber, pageSize int) ([]employee.EmployeeResponse, error) {
				assert.Equal(t, 2, pageNumber)
				assert.Equal(t, 10, pageSize)
				return []employee.EmployeeResponse{
					{EmployeeID: "E1", FullName: "Ann", BirthDate: "01-Jan-2000"},
					{EmployeeID: "E2", FullName: "Bob", BirthDate: "31-Dec-1999"},
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/employee?pageNumber=2&pageSize=10", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"pageNumber":2`)
		assert.Contains(t, w.Body.String(), `"pageSize":10`)
		assert.Contains(t, w.Body.String(), "Ann")
	})

	t.Run("unsupported pageSize snaps to 5", func(t *testing.T) {
		for _, raw := range []string{"7", "-1", "0"} {
			svc := &fakeEmployeeService{
				ListFn: func(ctx context.Context, pageNumber, pageSize int) ([]employee.EmployeeResponse, error) {
					assert.Equal(t, 5, pageSize)
					return []employee.EmployeeResponse{{EmployeeID: "E1"}}, nil
				},
			}

			h := employee.NewHandler(svc)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/employee?pageSize="+raw, nil)

			h.GetAll(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"pageSize":5`)
		}
	})

	t.Run("pageNumber below 1 clamps to 1", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, pageNumber, pageSize int) ([]employee.EmployeeResponse, error) {
				assert.Equal(t, 1, pageNumber)
				return []employee.EmployeeResponse{{EmployeeID: "E1"}}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/employee?pageNumber=-3", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("empty page returns 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, pageNumber, pageSize int) ([]employee.EmployeeResponse, error) {
				return []employee.EmployeeResponse{}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/employee", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "No employees found.")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, pageNumber, pageSize int) ([]employee.EmployeeResponse, error) {
				return nil, errors.New("store exploded")
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/employee", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error: store exploded")
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				assert.Equal(t, "E1", id)
				return employee.EmployeeResponse{EmployeeID: "E1", FullName: "Ann", BirthDate: "01-Jan-2000"}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/api/employee/:id", h.GetById)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/employee/E1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"birthDate":"01-Jan-2000"`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.NotFound(id)
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/api/employee/:id", h.GetById)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/employee/E9", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee with ID E9 not found.")
	})
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "E1", req.EmployeeID)
				return employee.EmployeeResponse{
					EmployeeID: req.EmployeeID,
					FullName:   req.FullName,
					BirthDate:  req.BirthDate,
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employeeId":"E1","fullName":"Ann","birthDate":"01-Jan-2000"}`
		req := httptest.NewRequest(http.MethodPost, "/api/employee", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/employee/E1", w.Header().Get("Location"))
		assert.Contains(t, w.Body.String(), "You have add employee successfully")
	})

	t.Run("validation error groups messages per field", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/employee", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"errors"`)
		assert.Contains(t, w.Body.String(), "Employee Id is required.")
		assert.Contains(t, w.Body.String(), "Full Name is required.")
		assert.Contains(t, w.Body.String(), "Birth Date is required.")
	})

	t.Run("malformed date is a client error", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employeeId":"E1","fullName":"Ann","birthDate":"2000-01-01"}`
		req := httptest.NewRequest(http.MethodPost, "/api/employee", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid date format. Please use 'dd-MMM-yyyy'.")
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/employee", strings.NewReader(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request body.")
	})

	t.Run("duplicate id returns conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.AlreadyExists(req.EmployeeID)
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employeeId":"E1","fullName":"Ann","birthDate":"01-Jan-2000"}`
		req := httptest.NewRequest(http.MethodPost, "/api/employee", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Employee with E1 ID already exists.")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("store exploded")
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employeeId":"E1","fullName":"Ann","birthDate":"01-Jan-2000"}`
		req := httptest.NewRequest(http.MethodPost, "/api/employee", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "E1", id)
				return employee.EmployeeResponse{EmployeeID: id, FullName: req.FullName, BirthDate: req.BirthDate}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"fullName":"Anne","birthDate":"02-Jan-2000"}`
		req := httptest.NewRequest(http.MethodPut, "/api/employee/E1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: "E1"}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Anne")
		assert.Contains(t, w.Body.String(), "You have edited employee successfully")
	})

	t.Run("validation error", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPut, "/api/employee/E1", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: "E1"}}

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Full Name is required.")
	})

	t.Run("not found does not create", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.NotFound(id)
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"fullName":"Nobody","birthDate":"02-Jan-2000"}`
		req := httptest.NewRequest(http.MethodPut, "/api/employee/ghost", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: "ghost"}}

		h.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee with ID ghost not found.")
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id string) error {
				assert.Equal(t, "E1", id)
				return nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.DELETE("/api/employee/:id", h.Delete)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/employee/E1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee deleted successfully.")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id string) error {
				return employeeerrors.NotFound(id)
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.DELETE("/api/employee/:id", h.Delete)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/employee/E9", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee with ID E9 not found.")
	})
}

// Full stack through RegisterRoutes with the real store.
func TestEmployeeLifecycle(t *testing.T) {
	r := setupRouter()
	logger := zap.NewNop()

	repo := employee.NewRepository()
	svc := employee.NewService(repo, logger)
	h := employee.NewHandler(svc, logger)

	api := r.Group("/api")
	employee.RegisterRoutes(api, h, logger)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// create
	w := do(http.MethodPost, "/api/employee", `{"employeeId":"E1","fullName":"Ann","birthDate":"01-Jan-2000"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"birthDate":"01-Jan-2000"`)

	// duplicate create
	w = do(http.MethodPost, "/api/employee", `{"employeeId":"E1","fullName":"Ann","birthDate":"01-Jan-2000"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Employee with E1 ID already exists.")

	// read back the exact fields
	w = do(http.MethodGet, "/api/employee/E1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fullName":"Ann"`)
	assert.Contains(t, w.Body.String(), `"birthDate":"01-Jan-2000"`)

	// update
	w = do(http.MethodPut, "/api/employee/E1", `{"fullName":"Anne","birthDate":"02-Jan-2000"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fullName":"Anne"`)
	assert.Contains(t, w.Body.String(), `"birthDate":"02-Jan-2000"`)

	// delete
	w = do(http.MethodDelete, "/api/employee/E1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// gone
	w = do(http.MethodGet, "/api/employee/E1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// listing is empty again
	w = do(http.MethodGet, "/api/employee", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No employees found.")
}
