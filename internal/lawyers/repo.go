package lawyers

import "context"

// Repo reads the lawyer directory.
type Repo interface {
	// List returns every lawyer, best rated first.
	List(ctx context.Context) ([]Lawyer, error)
	ListAvailable(ctx context.Context) ([]Lawyer, error)
	GetByID(ctx context.Context, id string) (Lawyer, error)
}
