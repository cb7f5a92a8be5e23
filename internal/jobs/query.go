package jobs

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/doug-martin/goqu/v9/exp"
)

// DefaultLimit bounds search results when the caller passes no usable limit.
const DefaultLimit = 10

// topN is how many locations/companies the statistics rankings keep.
const topN = 5

var dialect = goqu.Dialect("sqlite3")

// jobColumns is the column order every row scan in this package relies on.
var jobColumns = []interface{}{
	goqu.C("id"), goqu.C("title"), goqu.C("company"), goqu.C("location"),
	goqu.C("description"), goqu.C("salary_min"), goqu.C("salary_max"),
	goqu.C("url"), goqu.C("is_remote"), goqu.C("skills"),
	goqu.C("posted_date"), goqu.C("ingested_at"),
}

// SearchQuery carries the optional search_jobs filters. Zero values mean
// "filter absent".
type SearchQuery struct {
	Keywords string
	Location string
	Company  string
	Limit    int
}

// normalizedLimit coerces the limit to a positive integer, defaulting to
// DefaultLimit for zero or negative values.
func (q SearchQuery) normalizedLimit() uint {
	if q.Limit <= 0 {
		return DefaultLimit
	}
	return uint(q.Limit)
}

// searchSQL composes the single parameterized SELECT for a search. Present
// filters are ANDed; absent ones are omitted. SQLite's LIKE is already
// case-insensitive for ASCII, matching the contract. Results are ordered by
// descending id: ids are assigned in ingestion order, so this is "most
// recently ingested first" and fully deterministic.
func searchSQL(q SearchQuery) (string, []interface{}, error) {
	ds := dialect.From("jobs").Prepared(true).Select(jobColumns...)

	var conds []exp.Expression
	if q.Keywords != "" {
		pat := "%" + q.Keywords + "%"
		conds = append(conds, goqu.Or(
			goqu.C("title").Like(pat),
			goqu.C("description").Like(pat),
			goqu.C("skills").Like(pat),
		))
	}
	if q.Location != "" {
		conds = append(conds, goqu.C("location").Like("%"+q.Location+"%"))
	}
	if q.Company != "" {
		conds = append(conds, goqu.C("company").Like("%"+q.Company+"%"))
	}
	if len(conds) > 0 {
		ds = ds.Where(conds...)
	}

	return ds.Order(goqu.C("id").Desc()).Limit(q.normalizedLimit()).ToSQL()
}

// byIDSQL composes the single-row lookup for get_job_by_id.
func byIDSQL(id int64) (string, []interface{}, error) {
	return dialect.From("jobs").Prepared(true).
		Select(jobColumns...).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
}

// totalSQL counts all rows.
func totalSQL() (string, []interface{}, error) {
	return dialect.From("jobs").Prepared(true).
		Select(goqu.COUNT(goqu.Star())).
		ToSQL()
}

// remoteSQL counts remote rows.
func remoteSQL() (string, []interface{}, error) {
	return dialect.From("jobs").Prepared(true).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.C("is_remote").Eq(1)).
		ToSQL()
}

// groupedTopSQL composes a top-N count per grouping column, ordered by
// count descending then the group name ascending so ties rank
// alphabetically.
func groupedTopSQL(column string) (string, []interface{}, error) {
	return dialect.From("jobs").Prepared(true).
		Select(goqu.C(column), goqu.COUNT(goqu.Star()).As("count")).
		GroupBy(goqu.C(column)).
		Order(goqu.I("count").Desc(), goqu.C(column).Asc()).
		Limit(topN).
		ToSQL()
}
