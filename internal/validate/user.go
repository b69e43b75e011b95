package validate

// UserCreate checks account-creation input: fullName required with at
// least 3 characters, email required, password required with at least 6
// numeric characters.
func UserCreate(fullName, email, password *string) bool {
	return Check(fullName, Required(), MinLen(3)) &&
		Check(email, Required()) &&
		Check(password, Required(), MinLen(6), NumericOnly())
}

// UserLogin checks login input: an email-shaped address and the same
// password constraints as creation.
func UserLogin(email, password *string) bool {
	return Check(email, Required(), EmailShaped()) &&
		Check(password, Required(), MinLen(6), NumericOnly())
}

// UserUpdate checks profile-update input. Every field is optional here;
// the resolver separately refuses partial updates (fullName, email and
// password must all be supplied together).
func UserUpdate(fullName, email, password *string) bool {
	return Check(fullName, MinLen(3)) &&
		Check(email, EmailShaped()) &&
		Check(password, MinLen(6), NumericOnly())
}
