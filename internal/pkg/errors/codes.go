package errors

import "net/http"

var (
	ErrStationNotFound = New(
		"STATION_NOT_FOUND",
		"Station not found",
		http.StatusNotFound,
	)

	ErrSameStation = New(
		"SAME_STATION",
		"Source and target stations must differ",
		http.StatusBadRequest,
	)

	ErrPathNotFound = New(
		"PATH_NOT_FOUND",
		"Stations are not connected",
		http.StatusNotFound,
	)

	ErrInvalidAge = New(
		"INVALID_AGE",
		"Member age must not be negative",
		http.StatusBadRequest,
	)

	ErrGraphBuild = New(
		"GRAPH_BUILD_ERROR",
		"Subway network data is inconsistent",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Invalid or expired access token",
		http.StatusUnauthorized,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrTimeout = New(
		"TIMEOUT",
		"Request timed out",
		http.StatusServiceUnavailable,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
