package types

// TokenClaims is the identity carried by a verified access token.
type TokenClaims struct {
	UserID uint
}
