package domain

// Principal is the authenticated actor on whose behalf an operation runs.
// Identity resolution happens at the auth boundary; the engine only ever sees
// an explicit principal, never ambient request state.
type Principal struct {
	ID       int64
	Username string
	Role     string
}
