package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func isUniqueViolation(err error) bool {
	return pgErrCode(err) == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == pgerrcode.ForeignKeyViolation
}

// isBadUUID catches lookups with malformed ids. The HTTP layer passes path
// parameters through verbatim, so a garbage id must read as "not found"
// rather than a server error.
func isBadUUID(err error) bool {
	return pgErrCode(err) == pgerrcode.InvalidTextRepresentation
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
