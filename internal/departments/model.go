// Package departments implements the department vertical: model, repository,
// service and HTTP handler, plus the gRPC mirror under rpc/.
package departments

// Department represents an organizational unit.
type Department struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   *string  `json:"description"`
	ManagerName   string   `json:"managerName"`
	ManagerEmail  *string  `json:"managerEmail"`
	Location      *string  `json:"location"`
	Budget        *float64 `json:"budget"`
	EmployeeCount *int32   `json:"employeeCount"`
	Active        bool     `json:"active"`
}
