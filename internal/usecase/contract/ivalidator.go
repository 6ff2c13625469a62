package usecasecontract

// IValidator validates user-supplied values at the usecase boundary.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
