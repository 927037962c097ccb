package request

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Pagination struct {
	Limit  int `json:"limit" validate:"min=1,max=100"`
	Offset int `json:"offset" validate:"min=0"`
}

func DefaultPagination() Pagination {
	return Pagination{Limit: DefaultLimit, Offset: 0}
}

// Clamp forces limit and offset back into their valid ranges.
func (p Pagination) Clamp() Pagination {
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
