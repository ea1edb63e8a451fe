package model

// Session carries the authenticated caller through every operation that acts
// on their behalf. The token is forwarded to the order store; nothing reads
// auth state from ambient globals.
type Session struct {
	UserID int64
	Role   string
	Token  string
}

func (s Session) IsStaff() bool {
	return s.Role == RoleStaff || s.Role == RoleAdmin
}
