package models

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	SessionID string `json:"session_id"`
	User      User   `json:"user"`
	Message   string `json:"message"`
}

type AuthStatus struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

type User struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Courses []string `json:"courses"`
}

type Course struct {
	Hash       string  `json:"hash"`
	Name       string  `json:"name"`
	Enrolled   bool    `json:"enrolled"`
	Instructor *string `json:"instructor"`
}
