package rpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/atlas-backoffice/atlas-backoffice/internal/departments"
	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

// DepartmentServiceServer is the server API declared in departments.proto.
type DepartmentServiceServer interface {
	GetAllDepartments(ctx context.Context, req *GetAllDepartmentsRequest) (*GetAllDepartmentsResponse, error)
	GetDepartmentById(ctx context.Context, req *GetDepartmentByIdRequest) (*GetDepartmentByIdResponse, error)
	GetDepartmentByName(ctx context.Context, req *GetDepartmentByNameRequest) (*GetDepartmentByNameResponse, error)
	CreateDepartment(ctx context.Context, req *CreateDepartmentRequest) (*CreateDepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req *UpdateDepartmentRequest) (*UpdateDepartmentResponse, error)
	DeleteDepartment(ctx context.Context, req *DeleteDepartmentRequest) (*DeleteDepartmentResponse, error)
	SearchDepartmentsByName(ctx context.Context, req *SearchDepartmentsByNameRequest) (*SearchDepartmentsByNameResponse, error)
	SearchDepartmentsByManagerName(ctx context.Context, req *SearchDepartmentsByManagerNameRequest) (*SearchDepartmentsByManagerNameResponse, error)
	SearchDepartmentsByDescription(ctx context.Context, req *SearchDepartmentsByDescriptionRequest) (*SearchDepartmentsByDescriptionResponse, error)
	GetDepartmentsByLocation(ctx context.Context, req *GetDepartmentsByLocationRequest) (*GetDepartmentsByLocationResponse, error)
	GetActiveDepartments(ctx context.Context, req *GetActiveDepartmentsRequest) (*GetActiveDepartmentsResponse, error)
	GetInactiveDepartments(ctx context.Context, req *GetInactiveDepartmentsRequest) (*GetInactiveDepartmentsResponse, error)
	GetDepartmentsByBudget(ctx context.Context, req *GetDepartmentsByBudgetRequest) (*GetDepartmentsByBudgetResponse, error)
	GetDepartmentsByEmployeeCount(ctx context.Context, req *GetDepartmentsByEmployeeCountRequest) (*GetDepartmentsByEmployeeCountResponse, error)
	GetDepartmentsByManagerEmail(ctx context.Context, req *GetDepartmentsByManagerEmailRequest) (*GetDepartmentsByManagerEmailResponse, error)
	GetDepartmentsByActiveAndLocation(ctx context.Context, req *GetDepartmentsByActiveAndLocationRequest) (*GetDepartmentsByActiveAndLocationResponse, error)
	ActivateDepartment(ctx context.Context, req *ActivateDepartmentRequest) (*ActivateDepartmentResponse, error)
	DeactivateDepartment(ctx context.Context, req *DeactivateDepartmentRequest) (*DeactivateDepartmentResponse, error)
	UpdateDepartmentBudget(ctx context.Context, req *UpdateDepartmentBudgetRequest) (*UpdateDepartmentBudgetResponse, error)
	UpdateDepartmentEmployeeCount(ctx context.Context, req *UpdateDepartmentEmployeeCountRequest) (*UpdateDepartmentEmployeeCountResponse, error)
}

// Server adapts the department service to the gRPC surface. Lookups report
// absence through the found flag, mutations through the success flag with
// the domain error message; only unexpected failures become RPC errors.
type Server struct {
	logger  *slog.Logger
	service *departments.Service
}

// NewServer builds Server instance.
func NewServer(logger *slog.Logger, service *departments.Service) *Server {
	return &Server{logger: logger, service: service}
}

// toWire converts a department model to its wire form.
func toWire(d departments.Department) Department {
	w := Department{
		ID:          d.ID,
		Name:        d.Name,
		ManagerName: d.ManagerName,
		Active:      d.Active,
	}
	if d.Description != nil {
		w.Description = *d.Description
	}
	if d.ManagerEmail != nil {
		w.ManagerEmail = *d.ManagerEmail
	}
	if d.Location != nil {
		w.Location = *d.Location
	}
	if d.Budget != nil {
		w.Budget = *d.Budget
	}
	if d.EmployeeCount != nil {
		w.EmployeeCount = *d.EmployeeCount
	}
	return w
}

func toWireList(list []departments.Department) []Department {
	out := make([]Department, 0, len(list))
	for _, d := range list {
		out = append(out, toWire(d))
	}
	return out
}

// toRequest converts a wire department into a create/update request. Zero
// values mean "unset" for the optional fields.
func toRequest(w Department) departments.DepartmentRequest {
	req := departments.DepartmentRequest{
		Name:        w.Name,
		ManagerName: w.ManagerName,
		Active:      &w.Active,
	}
	if w.Description != "" {
		req.Description = &w.Description
	}
	if w.ManagerEmail != "" {
		req.ManagerEmail = &w.ManagerEmail
	}
	if w.Location != "" {
		req.Location = &w.Location
	}
	if w.Budget != 0 {
		req.Budget = &w.Budget
	}
	if w.EmployeeCount != 0 {
		req.EmployeeCount = &w.EmployeeCount
	}
	return req
}

func isDomainError(err error) bool {
	return errors.Is(err, shared.ErrNotFound) || errors.Is(err, shared.ErrConflict) || errors.Is(err, shared.ErrValidation)
}

// listResponse runs a filtered list for the read-only collection RPCs.
func (s *Server) listResponse(ctx context.Context, f departments.Filter) ([]Department, error) {
	list, err := s.service.List(ctx, f)
	if err != nil {
		s.logger.Error("rpc list departments failed", "error", err)
		return nil, err
	}
	return toWireList(list), nil
}

func (s *Server) GetAllDepartments(ctx context.Context, _ *GetAllDepartmentsRequest) (*GetAllDepartmentsResponse, error) {
	list, err := s.listResponse(ctx, departments.Filter{})
	if err != nil {
		return nil, err
	}
	return &GetAllDepartmentsResponse{Departments: list}, nil
}

func (s *Server) GetDepartmentById(ctx context.Context, req *GetDepartmentByIdRequest) (*GetDepartmentByIdResponse, error) {
	d, err := s.service.Get(ctx, req.ID)
	if errors.Is(err, shared.ErrNotFound) {
		return &GetDepartmentByIdResponse{Found: false}, nil
	}
	if err != nil {
		s.logger.Error("rpc get department failed", "error", err)
		return nil, err
	}
	w := toWire(d)
	return &GetDepartmentByIdResponse{Department: &w, Found: true}, nil
}

func (s *Server) GetDepartmentByName(ctx context.Context, req *GetDepartmentByNameRequest) (*GetDepartmentByNameResponse, error) {
	d, err := s.service.GetByName(ctx, req.Name)
	if errors.Is(err, shared.ErrNotFound) {
		return &GetDepartmentByNameResponse{Found: false}, nil
	}
	if err != nil {
		s.logger.Error("rpc get department by name failed", "error", err)
		return nil, err
	}
	w := toWire(d)
	return &GetDepartmentByNameResponse{Department: &w, Found: true}, nil
}

func (s *Server) CreateDepartment(ctx context.Context, req *CreateDepartmentRequest) (*CreateDepartmentResponse, error) {
	d, err := s.service.Create(ctx, toRequest(req.Department))
	if isDomainError(err) {
		return &CreateDepartmentResponse{Success: false, ErrorMessage: err.Error()}, nil
	}
	if err != nil {
		s.logger.Error("rpc create department failed", "error", err)
		return nil, err
	}
	w := toWire(d)
	return &CreateDepartmentResponse{Department: &w, Success: true}, nil
}

func (s *Server) UpdateDepartment(ctx context.Context, req *UpdateDepartmentRequest) (*UpdateDepartmentResponse, error) {
	d, err := s.service.Update(ctx, req.ID, toRequest(req.Department))
	if isDomainError(err) {
		return &UpdateDepartmentResponse{Success: false, ErrorMessage: err.Error()}, nil
	}
	if err != nil {
		s.logger.Error("rpc update department failed", "error", err)
		return nil, err
	}
	w := toWire(d)
	return &UpdateDepartmentResponse{Department: &w, Success: true}, nil
}

func (s *Server) DeleteDepartment(ctx context.Context, req *DeleteDepartmentRequest) (*DeleteDepartmentResponse, error) {
	err := s.service.Delete(ctx, req.ID)
	if isDomainError(err) {
		return &DeleteDepartmentResponse{Success: false, Message: err.Error()}, nil
	}
	if err != nil {
		s.logger.Error("rpc delete department failed", "error", err)
		return nil, err
	}
	return &DeleteDepartmentResponse{Success: true, Message: "Department deleted successfully"}, nil
}

func (s *Server) SearchDepartmentsByName(ctx context.Context, req *SearchDepartmentsByNameRequest) (*SearchDepartmentsByNameResponse, error) {
	list, err := s.listResponse(ctx, departments.Filter{NameLike: &req.Name})
	if err != nil {
		return nil, err
	}
	return &SearchDepartmentsByNameResponse{Departments: list}, nil
}

func (s *Server) SearchDepartmentsByManagerName(ctx context.Context, req *SearchDepartmentsByManagerNameRequest) (*SearchDepartmentsByManagerNameResponse, error) {
	list, err := s.listResponse(ctx, departments.Filter{ManagerLike: &req.ManagerName})
	if err != nil {
		return nil, err
	}
	return &SearchDepartmentsByManagerNameResponse{Departments: list}, nil
}

func (s *Server) SearchDepartmentsByDescription(ctx context.Context, req *SearchDepartmentsByDescriptionRequest) (*SearchDepartmentsByDescriptionResponse, error) {
	list, err := s.listResponse(ctx, departments.Filter{DescriptionLike: &req.Description})
	if err != nil {
		return nil, err
	}
	return &SearchDepartmentsByDescriptionResponse{Departments: list}, nil
}

func (s *Server) GetDepartmentsByLocation(ctx context.Context, req *GetDepartmentsByLocationRequest) (*GetDepartmentsByLocationResponse, error) {
	list, err := s.listResponse(ctx, departments.Filter{Location: &req.Location})
	if err != nil {
		return nil, err
	}
	return &GetDepartmentsByLocationResponse{Departments: list}, nil
}

func (s *Server) GetActiveDepartments(ctx context.Context, _ *GetActiveDepartmentsRequest) (*GetActiveDepartmentsResponse, error) {
	active := true
	list, err := s.listResponse(ctx, departments.Filter{Active: &active})
	if err != nil {
		return nil, err
	}
	return &GetActiveDepartmentsResponse{Departments: list}, nil
}

func (s *Server) GetInactiveDepartments(ctx context.Context, _ *GetInactiveDepartmentsRequest) (*GetInactiveDepartmentsResponse, error) {
	active := false
	list, err := s.listResponse(ctx, departments.Filter{Active: &active})
	if err != nil {
		return nil, err
	}
	return &GetInactiveDepartmentsResponse{Departments: list}, nil
}

func (s *Server) GetDepartmentsByBudget(ctx context.Context, req *GetDepartmentsByBudgetRequest) (*GetDepartmentsByBudgetResponse, error) {
	list, err := s.listResponse(ctx, departments.Filter{MinBudget: &req.MinBudget})
	if err != nil {
		return nil, err
	}
	return &GetDepartmentsByBudgetResponse{Departments: list}, nil
}

func (s *Server) GetDepartmentsByEmployeeCount(ctx context.Context, req *GetDepartmentsByEmployeeCountRequest) (*GetDepartmentsByEmployeeCountResponse, error) {
	list, err := s.listResponse(ctx, departments.Filter{MinEmployees: &req.MinEmployeeCount})
	if err != nil {
		return nil, err
	}
	return &GetDepartmentsByEmployeeCountResponse{Departments: list}, nil
}

func (s *Server) GetDepartmentsByManagerEmail(ctx context.Context, req *GetDepartmentsByManagerEmailRequest) (*GetDepartmentsByManagerEmailResponse, error) {
	list, err := s.listResponse(ctx, departments.Filter{ManagerEmail: &req.ManagerEmail})
	if err != nil {
		return nil, err
	}
	return &GetDepartmentsByManagerEmailResponse{Departments: list}, nil
}

func (s *Server) GetDepartmentsByActiveAndLocation(ctx context.Context, req *GetDepartmentsByActiveAndLocationRequest) (*GetDepartmentsByActiveAndLocationResponse, error) {
	list, err := s.listResponse(ctx, departments.Filter{Active: &req.Active, Location: &req.Location})
	if err != nil {
		return nil, err
	}
	return &GetDepartmentsByActiveAndLocationResponse{Departments: list}, nil
}

func (s *Server) ActivateDepartment(ctx context.Context, req *ActivateDepartmentRequest) (*ActivateDepartmentResponse, error) {
	d, err := s.service.Activate(ctx, req.ID)
	if isDomainError(err) {
		return &ActivateDepartmentResponse{Success: false, ErrorMessage: err.Error()}, nil
	}
	if err != nil {
		s.logger.Error("rpc activate department failed", "error", err)
		return nil, err
	}
	w := toWire(d)
	return &ActivateDepartmentResponse{Department: &w, Success: true}, nil
}

func (s *Server) DeactivateDepartment(ctx context.Context, req *DeactivateDepartmentRequest) (*DeactivateDepartmentResponse, error) {
	d, err := s.service.Deactivate(ctx, req.ID)
	if isDomainError(err) {
		return &DeactivateDepartmentResponse{Success: false, ErrorMessage: err.Error()}, nil
	}
	if err != nil {
		s.logger.Error("rpc deactivate department failed", "error", err)
		return nil, err
	}
	w := toWire(d)
	return &DeactivateDepartmentResponse{Department: &w, Success: true}, nil
}

func (s *Server) UpdateDepartmentBudget(ctx context.Context, req *UpdateDepartmentBudgetRequest) (*UpdateDepartmentBudgetResponse, error) {
	d, err := s.service.UpdateBudget(ctx, req.ID, req.Budget)
	if isDomainError(err) {
		return &UpdateDepartmentBudgetResponse{Success: false, ErrorMessage: err.Error()}, nil
	}
	if err != nil {
		s.logger.Error("rpc update department budget failed", "error", err)
		return nil, err
	}
	w := toWire(d)
	return &UpdateDepartmentBudgetResponse{Department: &w, Success: true}, nil
}

func (s *Server) UpdateDepartmentEmployeeCount(ctx context.Context, req *UpdateDepartmentEmployeeCountRequest) (*UpdateDepartmentEmployeeCountResponse, error) {
	d, err := s.service.UpdateEmployeeCount(ctx, req.ID, req.EmployeeCount)
	if isDomainError(err) {
		return &UpdateDepartmentEmployeeCountResponse{Success: false, ErrorMessage: err.Error()}, nil
	}
	if err != nil {
		s.logger.Error("rpc update department employee count failed", "error", err)
		return nil, err
	}
	w := toWire(d)
	return &UpdateDepartmentEmployeeCountResponse{Department: &w, Success: true}, nil
}
