package store

import "errors"

// Sentinel errors returned by storages. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrStoreUnavailable is returned when the backing store cannot be
	// reached or answers with a failure.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrRecordNotFound is returned when no invitation record exists for an id.
	ErrRecordNotFound = errors.New("invitation record not found")

	// ErrSettingNotFound is returned when a settings document is absent.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrMalformedSetting is returned when a settings document does not have
	// the expected JSON shape.
	ErrMalformedSetting = errors.New("malformed setting")

	// ErrUnknownDriver is returned by NewStorages for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level SQL errors wrapped by the sql document driver.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a document row fails.
	ErrScanningRow = errors.New("failed to scan document row")
)
