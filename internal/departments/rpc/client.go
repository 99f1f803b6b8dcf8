package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// Client is a hand-wired client for the department service. It selects the
// JSON codec on every call, so it can only talk to servers registered
// through this package.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an established client connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Res any](ctx context.Context, c *Client, method string, req any) (*Res, error) {
	out := new(Res)
	err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, grpc.CallContentSubtype(CodecName))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAllDepartments(ctx context.Context) (*GetAllDepartmentsResponse, error) {
	return invoke[GetAllDepartmentsResponse](ctx, c, "GetAllDepartments", &GetAllDepartmentsRequest{})
}

func (c *Client) GetDepartmentById(ctx context.Context, id int64) (*GetDepartmentByIdResponse, error) {
	return invoke[GetDepartmentByIdResponse](ctx, c, "GetDepartmentById", &GetDepartmentByIdRequest{ID: id})
}

func (c *Client) GetDepartmentByName(ctx context.Context, name string) (*GetDepartmentByNameResponse, error) {
	return invoke[GetDepartmentByNameResponse](ctx, c, "GetDepartmentByName", &GetDepartmentByNameRequest{Name: name})
}

func (c *Client) CreateDepartment(ctx context.Context, d Department) (*CreateDepartmentResponse, error) {
	return invoke[CreateDepartmentResponse](ctx, c, "CreateDepartment", &CreateDepartmentRequest{Department: d})
}

func (c *Client) UpdateDepartment(ctx context.Context, id int64, d Department) (*UpdateDepartmentResponse, error) {
	return invoke[UpdateDepartmentResponse](ctx, c, "UpdateDepartment", &UpdateDepartmentRequest{ID: id, Department: d})
}

func (c *Client) DeleteDepartment(ctx context.Context, id int64) (*DeleteDepartmentResponse, error) {
	return invoke[DeleteDepartmentResponse](ctx, c, "DeleteDepartment", &DeleteDepartmentRequest{ID: id})
}

func (c *Client) SearchDepartmentsByName(ctx context.Context, name string) (*SearchDepartmentsByNameResponse, error) {
	return invoke[SearchDepartmentsByNameResponse](ctx, c, "SearchDepartmentsByName", &SearchDepartmentsByNameRequest{Name: name})
}

func (c *Client) SearchDepartmentsByManagerName(ctx context.Context, managerName string) (*SearchDepartmentsByManagerNameResponse, error) {
	return invoke[SearchDepartmentsByManagerNameResponse](ctx, c, "SearchDepartmentsByManagerName", &SearchDepartmentsByManagerNameRequest{ManagerName: managerName})
}

func (c *Client) SearchDepartmentsByDescription(ctx context.Context, description string) (*SearchDepartmentsByDescriptionResponse, error) {
	return invoke[SearchDepartmentsByDescriptionResponse](ctx, c, "SearchDepartmentsByDescription", &SearchDepartmentsByDescriptionRequest{Description: description})
}

func (c *Client) GetDepartmentsByLocation(ctx context.Context, location string) (*GetDepartmentsByLocationResponse, error) {
	return invoke[GetDepartmentsByLocationResponse](ctx, c, "GetDepartmentsByLocation", &GetDepartmentsByLocationRequest{Location: location})
}

func (c *Client) GetActiveDepartments(ctx context.Context) (*GetActiveDepartmentsResponse, error) {
	return invoke[GetActiveDepartmentsResponse](ctx, c, "GetActiveDepartments", &GetActiveDepartmentsRequest{})
}

func (c *Client) GetInactiveDepartments(ctx context.Context) (*GetInactiveDepartmentsResponse, error) {
	return invoke[GetInactiveDepartmentsResponse](ctx, c, "GetInactiveDepartments", &GetInactiveDepartmentsRequest{})
}

func (c *Client) GetDepartmentsByBudget(ctx context.Context, minBudget float64) (*GetDepartmentsByBudgetResponse, error) {
	return invoke[GetDepartmentsByBudgetResponse](ctx, c, "GetDepartmentsByBudget", &GetDepartmentsByBudgetRequest{MinBudget: minBudget})
}

func (c *Client) GetDepartmentsByEmployeeCount(ctx context.Context, minEmployeeCount int32) (*GetDepartmentsByEmployeeCountResponse, error) {
	return invoke[GetDepartmentsByEmployeeCountResponse](ctx, c, "GetDepartmentsByEmployeeCount", &GetDepartmentsByEmployeeCountRequest{MinEmployeeCount: minEmployeeCount})
}

func (c *Client) GetDepartmentsByManagerEmail(ctx context.Context, managerEmail string) (*GetDepartmentsByManagerEmailResponse, error) {
	return invoke[GetDepartmentsByManagerEmailResponse](ctx, c, "GetDepartmentsByManagerEmail", &GetDepartmentsByManagerEmailRequest{ManagerEmail: managerEmail})
}

func (c *Client) GetDepartmentsByActiveAndLocation(ctx context.Context, active bool, location string) (*GetDepartmentsByActiveAndLocationResponse, error) {
	return invoke[GetDepartmentsByActiveAndLocationResponse](ctx, c, "GetDepartmentsByActiveAndLocation", &GetDepartmentsByActiveAndLocationRequest{Active: active, Location: location})
}

func (c *Client) ActivateDepartment(ctx context.Context, id int64) (*ActivateDepartmentResponse, error) {
	return invoke[ActivateDepartmentResponse](ctx, c, "ActivateDepartment", &ActivateDepartmentRequest{ID: id})
}

func (c *Client) DeactivateDepartment(ctx context.Context, id int64) (*DeactivateDepartmentResponse, error) {
	return invoke[DeactivateDepartmentResponse](ctx, c, "DeactivateDepartment", &DeactivateDepartmentRequest{ID: id})
}

func (c *Client) UpdateDepartmentBudget(ctx context.Context, id int64, budget float64) (*UpdateDepartmentBudgetResponse, error) {
	return invoke[UpdateDepartmentBudgetResponse](ctx, c, "UpdateDepartmentBudget", &UpdateDepartmentBudgetRequest{ID: id, Budget: budget})
}

func (c *Client) UpdateDepartmentEmployeeCount(ctx context.Context, id int64, employeeCount int32) (*UpdateDepartmentEmployeeCountResponse, error) {
	return invoke[UpdateDepartmentEmployeeCountResponse](ctx, c, "UpdateDepartmentEmployeeCount", &UpdateDepartmentEmployeeCountRequest{ID: id, EmployeeCount: employeeCount})
}
