package models

type Role string

const (
	AdminRole    Role = "ADMIN"
	EmployeeRole Role = "EMPLOYEE"
)

func (r Role) IsAdmin() bool {
	return r == AdminRole
}
