package domain

// Admin is a credential pair permitted to access all participant
// operations. The admin list is owned by an external administration
// process; this service only reads it.
type Admin struct {
	ID       string
	Username string
	Password string
}
