package domain

// ListMeta is the pagination data carried by every list response.
type ListMeta struct {
	TotalCount int
	Limit      int
	Offset     int
	HasMore    bool
}

// NextOffset returns the offset of the following page.
// The second value is false when the current page is the last one.
func (m ListMeta) NextOffset() (int, bool) {
	if !m.HasMore {
		return 0, false
	}

	return m.Offset + m.Limit, true
}

// Page is one page of a list endpoint, in server order.
type Page[T any] struct {
	Items []T
	Meta  ListMeta
}

// Len returns the number of items on this page.
func (p *Page[T]) Len() int {
	if p == nil {
		return 0
	}

	return len(p.Items)
}

// Empty reports whether the page has no items.
func (p *Page[T]) Empty() bool {
	return p.Len() == 0
}

// EmptyPage returns a page with no items.
func EmptyPage[T any]() *Page[T] {
	return &Page[T]{Items: []T{}}
}
