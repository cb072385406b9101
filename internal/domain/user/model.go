package user

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Profile is the session/role record at users/<uid>.
type Profile struct {
	UID            string `json:"uid"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	DateJoined     string `json:"dateJoined"`
	LastLogin      string `json:"lastLogin,omitempty"`
}

// Identity is what the external identity provider vouches for. Only Email
// takes part in the allow-list decision.
type Identity struct {
	UID     string
	Email   string
	Name    string
	Picture string
}
