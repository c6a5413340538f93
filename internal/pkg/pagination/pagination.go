package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

type Params struct {
	Page  int
	Limit int
}

func NewParams(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{
		Page:  page,
		Limit: limit,
	}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Info struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

func NewInfo(page, limit, total int) *Info {
	pages := total / limit
	if total%limit > 0 {
		pages++
	}

	return &Info{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}
