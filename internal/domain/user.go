package domain

type AuthProvider string

const (
	ProviderGoogle   AuthProvider = "google"
	ProviderGitHub   AuthProvider = "github"
	ProviderFacebook AuthProvider = "facebook"
)

func (p AuthProvider) Valid() bool {
	switch p {
	case ProviderGoogle, ProviderGitHub, ProviderFacebook:
		return true
	}
	return false
}

// User is supplied by an identity provider after an out-of-band login step.
// The engine only relies on ID to namespace persisted data; everything else
// is display material.
type User struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Avatar   string       `json:"avatar"`
	Provider AuthProvider `json:"provider"`
}
