package domain

const (
	RoleAdmin         = "admin"
	RoleClient        = "client"
	RoleSalesperson   = "salesperson"
	RoleTechnician    = "technician"
	RoleLabTechnician = "labTechnician"
)

type User struct {
	ID           string   `json:"id"`
	FullName     string   `json:"fullName"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	DNI          string   `json:"dni,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	IsActive     bool     `json:"isActive"`
	Roles        []string `json:"roles"`
	CreatedOn    string   `json:"created_on"`
}

// Principal is the authenticated caller, decoded from the bearer token and
// passed explicitly into every role-gated service call.
type Principal struct {
	ID       string   `json:"id"`
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (p Principal) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if p.HasRole(role) {
			return true
		}
	}
	return false
}

// HasOnlyRole reports whether role is the caller's sole role. The contract
// detail endpoint uses this to hide other users' contracts from plain clients.
func (p Principal) HasOnlyRole(role string) bool {
	return len(p.Roles) == 1 && p.Roles[0] == role
}

type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}
