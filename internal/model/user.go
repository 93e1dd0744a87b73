package model

// User is an account record managed by the clinical backend.  Email
// may be absent; the view layer substitutes "N/A" when it is empty.
//
// Fields:
//  ID       – backend identifier of the account.
//  Username – unique login name.
//  Email    – contact address, optional.
//  Role     – backend role name (e.g. ADMIN, DOCTOR, NURSE).
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// NewUser carries the fields submitted when creating an account.  The
// password travels to the backend exactly once and is never kept by
// the dashboard.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}
