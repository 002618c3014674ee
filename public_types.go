package orderful

import "github.com/orderful/orderful-go/internal/types"

// Public type aliases so SDK consumers can import only the orderful package.
type (
	ListRelationshipsParams = types.ListRelationshipsParams
	ListTransactionsParams  = types.ListTransactionsParams
)
