// Package authz holds the pure authorization decision functions shared by
// every resource service. No I/O happens here: callers supply the verified
// claims and the resource's owner id.
package authz

import "github.com/driftboard/driftboard/pkg/jwtx"

// CanCreateAsSelf guards creation endpoints where the request body declares
// an author id: the declared author must be the caller. Admins get no
// exemption; nobody posts as somebody else.
func CanCreateAsSelf(current jwtx.Claims, claimedAuthorID string) bool {
	return current.UserID() != "" && current.UserID() == claimedAuthorID
}

// CanMutate is the owner-or-admin rule used for update and delete of posts
// and comments.
func CanMutate(current jwtx.Claims, resourceOwnerID string) bool {
	if current.IsAdmin() {
		return true
	}
	return current.UserID() != "" && current.UserID() == resourceOwnerID
}

// RequireAdmin gates user-management operations.
func RequireAdmin(current jwtx.Claims) bool {
	return current.IsAdmin()
}

// IsSelf permits "my own profile" style access regardless of role.
func IsSelf(current jwtx.Claims, targetID string) bool {
	return current.UserID() != "" && current.UserID() == targetID
}
