package dto

// Field presence is validated in the service layer so incomplete bodies get
// the contractual "data incomplete" message, not a binding error.

// SignUpRequest is the JSON body for POST /auth/signup.
type SignUpRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenRequest is the JSON body for POST /auth/token.
type TokenRequest struct {
	Token string `json:"token"`
}

// StatusResponse carries only the server status message.
type StatusResponse struct {
	Res string `json:"res"`
}

// LoginResponse is returned on successful login. Token is the standing
// bearer credential for subsequent requests.
type LoginResponse struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Res       string `json:"res"`
	Token     string `json:"token"`
}

// LoginErrorResponse echoes only the non-sensitive part of the request.
// The submitted password is never included.
type LoginErrorResponse struct {
	Username string `json:"username"`
	Res      string `json:"res"`
}
