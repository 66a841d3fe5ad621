package auth

type Login struct {
	Email    string
	Password string
}
