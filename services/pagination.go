package services

const (
	defaultPage  = 1
	defaultLimit = 12
	maxLimit     = 100
)

// ClampPagination normalizes page/limit query values into [1,∞) and [1,100],
// defaulting to page 1, limit 12.
func ClampPagination(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
