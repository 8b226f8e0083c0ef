package store

import (
	"context"

	"github.com/MKhiriev/go-fin-simulator/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CredentialStore keeps the client's single session credential across
// restarts.
type CredentialStore interface {
	// Save replaces any stored credential.
	Save(ctx context.Context, cred models.Credential) error
	// Load returns ErrCredentialNotFound when nothing is stored.
	Load(ctx context.Context) (models.Credential, error)
	// Delete is a no-op when nothing is stored.
	Delete(ctx context.Context) error
}
