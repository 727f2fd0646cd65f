package form

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func (f *LoginForm) Ok() (Errors, bool) {
	return Validate(f)
}
