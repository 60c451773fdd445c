package employee

import (
	"context"
	"errors"

	employeeerrors "employee-api/internal/employee/errors"
	"employee-api/internal/shared/contextutil"
	"employee-api/internal/shared/dateformat"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, pageNumber, pageSize int) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(
	ctx context.Context,
	pageNumber, pageSize int,
) ([]EmployeeResponse, error) {
	s.logger.Debug("list employees requested",
		zap.Int("page_number", pageNumber),
		zap.Int("page_size", pageSize),
	)

	empls, err := s.repo.List(ctx, pageNumber, pageSize)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(
	ctx context.Context,
	id string,
) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	empl, ok := s.repo.FindByID(ctx, id)
	if !ok {
		s.logger.Warn("employee not found", zap.String("employee_id", id))
		return EmployeeResponse{}, employeeerrors.NotFound(id)
	}

	return mapToResponse(empl), nil
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
	)

	birthDate, err := dateformat.Parse(req.BirthDate)
	if err != nil {
		s.logger.Warn("create employee invalid birth date",
			zap.String("birth_date", req.BirthDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidBirthDate
	}

	empl := Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		BirthDate:  birthDate,
	}

	if err := s.repo.Insert(ctx, empl); err != nil {
		if errors.Is(err, ErrDuplicateID) {
			s.logger.Warn("create employee id taken", zap.String("employee_id", req.EmployeeID))
			return EmployeeResponse{}, employeeerrors.AlreadyExists(req.EmployeeID)
		}
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.EmployeeID),
		zap.Int("total_employees", s.repo.Count(ctx)),
	)

	return mapToResponse(empl), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	birthDate, err := dateformat.Parse(req.BirthDate)
	if err != nil {
		s.logger.Warn("update employee invalid birth date",
			zap.String("birth_date", req.BirthDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidBirthDate
	}

	// Full overwrite of the mutable fields, id preserved from the path.
	empl := Employee{
		EmployeeID: id,
		FullName:   req.FullName,
		BirthDate:  birthDate,
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		if errors.Is(err, ErrNotExist) {
			s.logger.Warn("update employee not found", zap.String("employee_id", id))
			return EmployeeResponse{}, employeeerrors.NotFound(id)
		}
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(empl), nil
}

func (s *service) Delete(
	ctx context.Context,
	id string,
) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	if ok := s.repo.Delete(ctx, id); !ok {
		s.logger.Warn("delete employee not found", zap.String("employee_id", id))
		return employeeerrors.NotFound(id)
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: empl.EmployeeID,
		FullName:   empl.FullName,
		BirthDate:  dateformat.Format(empl.BirthDate),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
