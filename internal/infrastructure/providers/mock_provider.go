package providers

import (
	"context"
	"fmt"

	"github.com/todoflow/todoflow/internal/domain"
)

// MockProvider simulates the out-of-band social login step. Each provider
// resolves to a fixed demo user; there is no real authentication.
type MockProvider struct {
	provider domain.AuthProvider
}

func NewMockProvider(provider domain.AuthProvider) (MockProvider, error) {
	if !provider.Valid() {
		return MockProvider{}, fmt.Errorf("unknown auth provider %q", string(provider))
	}
	return MockProvider{provider: provider}, nil
}

func (p MockProvider) Provider() domain.AuthProvider {
	return p.provider
}

func (p MockProvider) Authenticate(ctx context.Context) (domain.User, error) {
	user, ok := mockUsers[p.provider]
	if !ok {
		return domain.User{}, fmt.Errorf("no mock user for provider %q", string(p.provider))
	}
	return user, nil
}

var mockUsers = map[domain.AuthProvider]domain.User{
	domain.ProviderGoogle: {
		ID:       "google-123",
		Name:     "John Doe",
		Email:    "john.doe@gmail.com",
		Avatar:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		Provider: domain.ProviderGoogle,
	},
	domain.ProviderGitHub: {
		ID:       "github-456",
		Name:     "Jane Smith",
		Email:    "jane.smith@users.noreply.github.com",
		Avatar:   "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		Provider: domain.ProviderGitHub,
	},
	domain.ProviderFacebook: {
		ID:       "facebook-789",
		Name:     "Alex Johnson",
		Email:    "alex.johnson@facebook.com",
		Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		Provider: domain.ProviderFacebook,
	},
}
