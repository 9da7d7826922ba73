package model

// Role is an AnythingLLM application role.
type Role string

const (
	RoleDefault Role = "default"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is a role AnythingLLM accepts.
func (r Role) Valid() bool {
	switch r {
	case RoleDefault, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Rank orders roles by privilege. Unknown roles rank below default.
func (r Role) Rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleManager:
		return 2
	case RoleDefault:
		return 1
	}
	return 0
}

func (r Role) String() string {
	return string(r)
}
