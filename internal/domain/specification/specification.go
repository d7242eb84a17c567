// Package specification expresses lookup intents as declarative query
// predicates, keeping ad hoc filter code out of services and
// repositories. A specification is a list of boolean criteria the
// persistence layer ANDs together.
package specification

import (
	"strings"

	"github.com/google/uuid"
)

// Criterion is a single boolean filter: a SQL expression with
// positional placeholders plus its arguments.
type Criterion struct {
	Expr string
	Args []any
}

// Specification is a declarative query predicate.
type Specification interface {
	Criteria() []Criterion
}

// criteriaSpec is the value type behind every constructor below.
type criteriaSpec []Criterion

func (s criteriaSpec) Criteria() []Criterion {
	return s
}

// All matches every row.
func All() Specification {
	return criteriaSpec(nil)
}

// ByID matches exactly the row with the given synthetic identifier.
func ByID(id uuid.UUID) Specification {
	return criteriaSpec{{Expr: "id = ?", Args: []any{id}}}
}

// CategoryByName matches a category by its unique name.
func CategoryByName(name string) Specification {
	return criteriaSpec{{Expr: "name = ?", Args: []any{name}}}
}

// ProductByName matches a product by its unique name.
func ProductByName(name string) Specification {
	return criteriaSpec{{Expr: "name = ?", Args: []any{name}}}
}

// FeedbackByUserAndProduct matches the single feedback a user may
// leave on a product.
func FeedbackByUserAndProduct(userID, productID uuid.UUID) Specification {
	return criteriaSpec{{Expr: "user_id = ? AND product_id = ?", Args: []any{userID, productID}}}
}

// FavoriteByUserAndProduct matches the single favorite link a user
// may hold on a product.
func FavoriteByUserAndProduct(userID, productID uuid.UUID) Specification {
	return criteriaSpec{{Expr: "user_id = ? AND product_id = ?", Args: []any{userID, productID}}}
}

// FavoritesByUser matches every product favorited by a user.
func FavoritesByUser(userID uuid.UUID) Specification {
	return criteriaSpec{{Expr: "user_id = ?", Args: []any{userID}}}
}

// ProfileByUser matches the single profile owned by a user.
func ProfileByUser(userID uuid.UUID) Specification {
	return criteriaSpec{{Expr: "user_id = ?", Args: []any{userID}}}
}

// CategorySearch filters categories by a case-insensitive substring
// match on the name.
func CategorySearch(search string) Specification {
	return textSearch(search, "name")
}

// ProductSearch filters products by a case-insensitive substring match
// on the name.
func ProductSearch(search string) Specification {
	return textSearch(search, "name")
}

// FeedbackSearch filters feedback entries by their content.
func FeedbackSearch(search string) Specification {
	return textSearch(search, "content")
}

// ProfileSearch filters profiles by first or last name.
func ProfileSearch(search string) Specification {
	return textSearch(search, "first_name", "last_name")
}

// OrderSearch exists for interface symmetry: orders carry no text
// fields, so the search term is ignored and every order matches.
func OrderSearch(string) Specification {
	return All()
}

// textSearch builds a case-insensitive substring predicate over the
// given columns. The term is trimmed; a blank term means no filter.
// Whitespace between tokens is treated as a wildcard, so "red shirt"
// matches "red cotton shirt".
func textSearch(search string, columns ...string) Specification {
	search = strings.TrimSpace(search)
	if search == "" {
		return All()
	}

	pattern := "%" + strings.Join(strings.Fields(search), "%") + "%"

	exprs := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		exprs = append(exprs, column+" ILIKE ?")
		args = append(args, pattern)
	}

	return criteriaSpec{{Expr: strings.Join(exprs, " OR "), Args: args}}
}
