package paginator

const (
	DefaultPage  = 1
	DefaultLimit = 50
	// MaxLimit caps a page so a single request cannot scan the whole mapping table.
	MaxLimit = 200
)
