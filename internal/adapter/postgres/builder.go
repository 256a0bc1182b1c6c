package postgres

import sq "github.com/Masterminds/squirrel"

// Builder is the shared squirrel statement builder with PostgreSQL
// placeholders. Repos use it for queries whose WHERE clause is dynamic.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
