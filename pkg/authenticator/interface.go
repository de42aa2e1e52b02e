package authenticator

// TokenEngine signs and verifies tokens carrying an arbitrary object in their
// claims.
type TokenEngine[T any] interface {
	Generate(sub string, obj T) (string, error)
	Verify(token string) (T, error)
}
