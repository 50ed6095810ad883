package domain

// EnforceRequest is the authorization question asked by the RBAC
// middleware: may this role perform this action on this resource?
type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}
