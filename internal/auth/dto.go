package auth

// ValidationError marks DTO-level failures so handlers can map them to 400.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

type RegisterDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (dto RegisterDTO) Validate() error {
	if dto.Name == "" {
		return ValidationError{Message: "name is required"}
	}
	if dto.Email == "" {
		return ValidationError{Message: "email is required"}
	}
	if len(dto.Password) < 6 {
		return ValidationError{Message: "password must be at least 6 characters"}
	}
	return nil
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (dto LoginDTO) Validate() error {
	if dto.Email == "" {
		return ValidationError{Message: "email is required"}
	}
	if dto.Password == "" {
		return ValidationError{Message: "password is required"}
	}
	return nil
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (dto RefreshTokenDTO) Validate() error {
	if dto.RefreshToken == "" {
		return ValidationError{Message: "refresh_token is required"}
	}
	return nil
}

type AuthResponse struct {
	AuthTokens
	User User `json:"user"`
}
