package request

type Login struct {
	Password string `json:"password" validate:"required"`
}

// SessionExpiration is the payload of the delayed session reaping task.
type SessionExpiration struct {
	Token string `json:"token" validate:"required"`
}
