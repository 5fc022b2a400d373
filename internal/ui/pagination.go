package ui

// Pager re-paginates an already-fetched window in memory. The portal
// hands back up to 50 items per request; pages of 10 are cut from that
// window client-side.
type Pager[T any] struct {
	items    []T
	pageSize int
}

func NewPager[T any](items []T, pageSize int) Pager[T] {
	return Pager[T]{items: items, pageSize: pageSize}
}

func (p Pager[T]) TotalPages() int {
	if p.pageSize <= 0 {
		return 0
	}
	return (len(p.items) + p.pageSize - 1) / p.pageSize
}

// NextPage advances from current, staying put on the last page.
func (p Pager[T]) NextPage(current int) int {
	if current < p.TotalPages() {
		return current + 1
	}
	return current
}

// PrevPage steps back from current, staying put on the first page.
func (p Pager[T]) PrevPage(current int) int {
	if current > 1 {
		return current - 1
	}
	return current
}

// PageView is what a template needs to render one page plus its
// navigation controls.
type PageView[T any] struct {
	Items   []T
	Current int
	Total   int
	Next    int
	Prev    int
	HasNext bool
	HasPrev bool
}

// View slices the 1-indexed page. A page past the end yields an empty
// item list rather than clamping; callers that shrink the backing list
// are expected to reset to page 1 themselves.
func (p Pager[T]) View(current int) PageView[T] {
	if current < 1 {
		current = 1
	}
	total := p.TotalPages()

	start := (current - 1) * p.pageSize
	end := start + p.pageSize
	var items []T
	if start < len(p.items) {
		if end > len(p.items) {
			end = len(p.items)
		}
		items = p.items[start:end]
	}

	return PageView[T]{
		Items:   items,
		Current: current,
		Total:   total,
		Next:    p.NextPage(current),
		Prev:    p.PrevPage(current),
		HasNext: current < total,
		HasPrev: current > 1,
	}
}
