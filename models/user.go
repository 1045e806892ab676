package models

type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Role          Role   `json:"role"`
	Department    string `json:"department"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Address       string `json:"address,omitempty"`
	Gender        string `json:"gender,omitempty"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthRes struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type RegisterReq struct {
	Email         string `json:"email" validate:"required"`
	Password      string `json:"password,omitempty"`
	Name          string `json:"name,omitempty"`
	Department    string `json:"department,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Address       string `json:"address,omitempty"`
	Gender        string `json:"gender,omitempty"`
}

type TokenRes struct {
	Token string `json:"token"`
}

// MessageRes is the body of every message-only response, success or failure.
type MessageRes struct {
	Message string `json:"message"`
}
