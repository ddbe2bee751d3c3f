package domain

// User represents an authenticated operator of the bookkeeping tool.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // Never serialized
	IsActive     bool   `json:"isActive"`
	AuditFields
}
