package rpc

// Department is the wire form of a department. Optional fields use the
// zero value for "unset", matching proto3 semantics.
type Department struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	ManagerName   string  `json:"managerName"`
	ManagerEmail  string  `json:"managerEmail"`
	Location      string  `json:"location"`
	Budget        float64 `json:"budget"`
	EmployeeCount int32   `json:"employeeCount"`
	Active        bool    `json:"active"`
}

type GetAllDepartmentsRequest struct{}

type GetAllDepartmentsResponse struct {
	Departments []Department `json:"departments"`
}

type GetDepartmentByIdRequest struct {
	ID int64 `json:"id"`
}

type GetDepartmentByIdResponse struct {
	Department *Department `json:"department,omitempty"`
	Found      bool        `json:"found"`
}

type GetDepartmentByNameRequest struct {
	Name string `json:"name"`
}

type GetDepartmentByNameResponse struct {
	Department *Department `json:"department,omitempty"`
	Found      bool        `json:"found"`
}

type CreateDepartmentRequest struct {
	Department Department `json:"department"`
}

type CreateDepartmentResponse struct {
	Department   *Department `json:"department,omitempty"`
	Success      bool        `json:"success"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
}

type UpdateDepartmentRequest struct {
	ID         int64      `json:"id"`
	Department Department `json:"department"`
}

type UpdateDepartmentResponse struct {
	Department   *Department `json:"department,omitempty"`
	Success      bool        `json:"success"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
}

type DeleteDepartmentRequest struct {
	ID int64 `json:"id"`
}

type DeleteDepartmentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SearchDepartmentsByNameRequest struct {
	Name string `json:"name"`
}

type SearchDepartmentsByNameResponse struct {
	Departments []Department `json:"departments"`
}

type SearchDepartmentsByManagerNameRequest struct {
	ManagerName string `json:"managerName"`
}

type SearchDepartmentsByManagerNameResponse struct {
	Departments []Department `json:"departments"`
}

type SearchDepartmentsByDescriptionRequest struct {
	Description string `json:"description"`
}

type SearchDepartmentsByDescriptionResponse struct {
	Departments []Department `json:"departments"`
}

type GetDepartmentsByLocationRequest struct {
	Location string `json:"location"`
}

type GetDepartmentsByLocationResponse struct {
	Departments []Department `json:"departments"`
}

type GetActiveDepartmentsRequest struct{}

type GetActiveDepartmentsResponse struct {
	Departments []Department `json:"departments"`
}

type GetInactiveDepartmentsRequest struct{}

type GetInactiveDepartmentsResponse struct {
	Departments []Department `json:"departments"`
}

type GetDepartmentsByBudgetRequest struct {
	MinBudget float64 `json:"minBudget"`
}

type GetDepartmentsByBudgetResponse struct {
	Departments []Department `json:"departments"`
}

type GetDepartmentsByEmployeeCountRequest struct {
	MinEmployeeCount int32 `json:"minEmployeeCount"`
}

type GetDepartmentsByEmployeeCountResponse struct {
	Departments []Department `json:"departments"`
}

type GetDepartmentsByManagerEmailRequest struct {
	ManagerEmail string `json:"managerEmail"`
}

type GetDepartmentsByManagerEmailResponse struct {
	Departments []Department `json:"departments"`
}

type GetDepartmentsByActiveAndLocationRequest struct {
	Active   bool   `json:"active"`
	Location string `json:"location"`
}

type GetDepartmentsByActiveAndLocationResponse struct {
	Departments []Department `json:"departments"`
}

type ActivateDepartmentRequest struct {
	ID int64 `json:"id"`
}

type ActivateDepartmentResponse struct {
	Department   *Department `json:"department,omitempty"`
	Success      bool        `json:"success"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
}

type DeactivateDepartmentRequest struct {
	ID int64 `json:"id"`
}

type DeactivateDepartmentResponse struct {
	Department   *Department `json:"department,omitempty"`
	Success      bool        `json:"success"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
}

type UpdateDepartmentBudgetRequest struct {
	ID     int64   `json:"id"`
	Budget float64 `json:"budget"`
}

type UpdateDepartmentBudgetResponse struct {
	Department   *Department `json:"department,omitempty"`
	Success      bool        `json:"success"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
}

type UpdateDepartmentEmployeeCountRequest struct {
	ID            int64 `json:"id"`
	EmployeeCount int32 `json:"employeeCount"`
}

type UpdateDepartmentEmployeeCountResponse struct {
	Department   *Department `json:"department,omitempty"`
	Success      bool        `json:"success"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
}
