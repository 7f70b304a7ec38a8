package store

import "errors"

// Large-object errors returned by the reassembler state machine. The storage
// handler reports them to callers as a false return value and logs them.
var (
	// ErrLargeObjectInProgress is returned when a new large object is started
	// while another one is still being assembled.
	ErrLargeObjectInProgress = errors.New("large object already in progress")

	// ErrNoLargeObject is returned when data is appended to, or a finish is
	// requested for, a slot that holds no large object.
	ErrNoLargeObject = errors.New("no large object in progress")

	// ErrLargeObjectSizeRequired is returned when a large object is started
	// without a positive declared size.
	ErrLargeObjectSizeRequired = errors.New("large object size required")

	// ErrLargeObjectTooBig is returned when the declared size exceeds the
	// plugin's maximum object size.
	ErrLargeObjectTooBig = errors.New("large object exceeds maximum object size")

	// ErrLargeObjectOverflow is returned when appended chunks exceed the
	// declared size of the object.
	ErrLargeObjectOverflow = errors.New("large object data exceeds declared size")
)

// Staging errors.
var (
	// ErrItemAlreadyStaged is returned when an ItemID is staged twice.
	ErrItemAlreadyStaged = errors.New("item already staged")

	// ErrEmptyItemKey is returned when a delete or a large object has no key.
	ErrEmptyItemKey = errors.New("empty item key")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails.
var (
	// ErrUnsupportedDriver is returned when the configured database/sql
	// driver is neither sqlite3 nor pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
