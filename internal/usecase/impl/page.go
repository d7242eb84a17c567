package impl

import (
	"webshop/internal/domain/repository"
)

// mapPage projects every item of a repository page onto its transfer
// shape, preserving the paging metadata.
func mapPage[E any, D any](page *repository.Page[E], project func(*E) *D) *repository.Page[D] {
	items := make([]D, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *project(&page.Items[i]))
	}

	return &repository.Page[D]{
		Items:      items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
}
