package auth

import "github.com/quyetcv1/coffee-shop/models"

// CheckPermissions reports whether claims grant permission.
//
// An empty permission only requires a verified token. Otherwise a token
// without a "permissions" claim fails with [ErrPermissionsMissing] and one
// that does not list permission fails with [ErrPermissionDenied].
func CheckPermissions(permission string, claims models.Claims) error {
	if permission == "" {
		return nil
	}

	if claims.Permissions == nil {
		return ErrPermissionsMissing
	}

	if !claims.HasPermission(permission) {
		return ErrPermissionDenied
	}

	return nil
}
