package departments

// DepartmentRequest is the payload for create and full update.
type DepartmentRequest struct {
	Name          string   `json:"name" validate:"required,min=2,max=50"`
	Description   *string  `json:"description" validate:"omitempty,max=200"`
	ManagerName   string   `json:"managerName" validate:"required,min=2,max=50"`
	ManagerEmail  *string  `json:"managerEmail" validate:"omitempty,email"`
	Location      *string  `json:"location" validate:"omitempty,max=100"`
	Budget        *float64 `json:"budget" validate:"omitempty,gte=0"`
	EmployeeCount *int32   `json:"employeeCount" validate:"omitempty,gte=0"`
	Active        *bool    `json:"active"`
}

func (r DepartmentRequest) toModel() Department {
	d := Department{
		Name:          r.Name,
		Description:   r.Description,
		ManagerName:   r.ManagerName,
		ManagerEmail:  r.ManagerEmail,
		Location:      r.Location,
		Budget:        r.Budget,
		EmployeeCount: r.EmployeeCount,
		Active:        true,
	}
	if r.Active != nil {
		d.Active = *r.Active
	}
	return d
}
