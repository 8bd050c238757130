package identity

import "github.com/propertyhub/backend/internal/domain/shared"

// CodeInvalidCredentials is returned when the email or password does not match
const CodeInvalidCredentials = "INVALID_CREDENTIALS"

// ErrInvalidCredentials hides whether the email or the password was wrong
var ErrInvalidCredentials = shared.NewDomainError(CodeInvalidCredentials, "Invalid email or password")
